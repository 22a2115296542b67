package bot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"league_table/internal/config"
	"league_table/internal/transport/bot/handler"
	"league_table/pkg/contextx"
	"league_table/pkg/httpx"
	"league_table/pkg/logx"
)

const longPollingTimeout = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot представляет собой Telegram-бота, отвечающего таблицей лиги на /table.
type Bot struct {
	bot           *telego.Bot
	handler       *handler.Handler
	allowedChatID int64
}

func New(cfg config.Bot, commandHandler *handler.Handler) (*Bot, error) {
	var opts []telego.BotOption

	if cfg.LogRequests {
		opts = append(opts, telego.WithHTTPClient(&http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
			),
		}))
	}

	bot, err := telego.NewBot(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:           bot,
		handler:       commandHandler,
		allowedChatID: cfg.AllowedChatID,
	}, nil
}

// Run получает обновления через long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.allowedChatID)

	go func() {
		<-ctx.Done()

		if err := botHandler.StopWithContext(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started")

	if err := botHandler.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
