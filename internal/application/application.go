package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"league_table/internal/config"
	"league_table/internal/domain/service/league"
	"league_table/internal/server"
	"league_table/internal/transport/bot"
	"league_table/internal/transport/bot/handler"
	"league_table/pkg/application/modules"
	"league_table/pkg/contextx"
	"league_table/pkg/logx"
)

// Run собирает зависимости и блокируется до отмены ctx или падения одного
// из модулей.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	leagueService := league.NewService().
		WithCache(cfg.League.CacheTTL, cfg.League.CacheCleanup).
		WithCacheLimit(cfg.League.CacheMaxEntries)

	srv := server.NewServer(
		server.NewLeagueServer(leagueService),
		server.NewPageServer(leagueService),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr: cfg.HTTP.ListenAddress,
		Handler: server.NewRouter(srv, server.RouterOptions{
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
			MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	var telegramBot *bot.Bot

	if cfg.Bot.Enabled() {
		var err error

		telegramBot, err = bot.New(cfg.Bot, handler.New(leagueService))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}
	} else {
		log.Info("telegram bot disabled, BOT_TOKEN is empty")
	}

	g, ctx := errgroup.WithContext(ctx)

	err := modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)
	if err != nil {
		return fmt.Errorf("modules.HTTPServer.Run: %w", err)
	}

	modules.MetricServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	if telegramBot != nil {
		modules.Background{Name: "telegramBot"}.Run(ctx, g, telegramBot)
	}

	// The public listener is bound and every module is launched.
	probeServer.MarkReady()

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
