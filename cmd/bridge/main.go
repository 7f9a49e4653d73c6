package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/di"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-discord-bridge/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Text logs on stdout, errors duplicated as JSON on stderr
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.IsVerbose() {
		level.Set(slog.LevelDebug)
	}

	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		slog.Error("Failed to start telegram bot", "error", err)
		os.Exit(1)
	}
	server := do.MustInvoke[*httpServer.Server](injector)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	slog.Info("Bridge started",
		"port", cfg.HTTPPort,
		"env", cfg.AppEnv,
		"allowed_chats", len(cfg.AllowedChats),
		"max_file_bytes", cfg.MaxFileBytes)

	// Blocks until ctx is cancelled
	b.Start(ctx)

	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := di.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}
