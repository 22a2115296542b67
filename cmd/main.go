package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"league_table/internal/application"
	"league_table/internal/config"
	"league_table/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logx.New(os.Stderr, slog.LevelInfo).Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel)

	if err := application.Run(ctx, cfg, log); err != nil {
		log.Error("application.Run", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
