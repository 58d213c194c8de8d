package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"addressbook/internal/application"
	"addressbook/internal/config"
	"addressbook/pkg/logx"
)

const appName = "addressbook"

var version = "dev" //nolint:gochecknoglobals // задаётся через -ldflags

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.New(cfg.Log.Options()).With(
		slog.String(logx.FieldAppName, appName),
		slog.String(logx.FieldAppVersion, version),
	)
	slog.SetDefault(log)

	if err := application.Run(ctx, cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
