package di

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	contentService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/content/service"
	dispatchService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/dispatch/service"
	forwardService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/forward/service"
	mediaRepo "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/media/repository"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/config"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/metrics"
	httpServer "github.com/reshetovitsme/telegram-discord-bridge/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/telegram-discord-bridge/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

// Setup initializes the dependency injection container.
// Providers are lazy; nothing is built until first invoked.
func Setup() (do.Injector, error) {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	do.Provide(injector, func(i do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (*metrics.Metrics, error) {
		return metrics.New(do.MustInvoke[*prometheus.Registry](i)), nil
	})

	// One pooled client shared by media downloads and webhook calls.
	// Timeouts are applied per request through the context.
	do.Provide(injector, func(i do.Injector) (*http.Client, error) {
		return &http.Client{}, nil
	})

	do.Provide(injector, func(i do.Injector) (*rate.Limiter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.WebhookRateLimit <= 0 {
			return rate.NewLimiter(rate.Inf, 0), nil
		}
		return rate.NewLimiter(rate.Limit(cfg.WebhookRateLimit), max(cfg.WebhookRateBurst, 1)), nil
	})

	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithAllowedUpdates(bot.AllowedUpdates{"channel_post", "message"}),
			// The handler depends on the bot through the media source, so it is resolved per update
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
				do.MustInvoke[*telegramHandler.Handler](i).HandleUpdate(ctx, b, update)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}
		return b, nil
	})

	do.Provide(injector, func(i do.Injector) (mediaRepo.Source, error) {
		b := do.MustInvoke[*bot.Bot](i)
		client := do.MustInvoke[*http.Client](i)
		return mediaRepo.NewTelegramSource(b, client), nil
	})

	do.Provide(injector, func(i do.Injector) (*contentService.Assembler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return contentService.New(cfg.ChannelURL, cfg.ShowChannelHeader), nil
	})

	do.Provide(injector, func(i do.Injector) (*dispatchService.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return dispatchService.New(
			cfg.WebhookURL,
			cfg.MaxFileBytes,
			do.MustInvoke[*http.Client](i),
			do.MustInvoke[mediaRepo.Source](i),
			dispatchService.WithMaxAttempts(cfg.RetryMaxAttempts),
			dispatchService.WithBaseDelay(cfg.RetryBaseDelay),
			dispatchService.WithTimeouts(cfg.WebhookJSONTimeout, cfg.WebhookMultipartTimeout),
			dispatchService.WithLimiter(do.MustInvoke[*rate.Limiter](i)),
			dispatchService.WithMetrics(do.MustInvoke[*metrics.Metrics](i)),
			dispatchService.WithLogger(slog.Default().With("component", "dispatch")),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*forwardService.Service, error) {
		svc := forwardService.New(
			do.MustInvoke[*contentService.Assembler](i),
			do.MustInvoke[*dispatchService.Client](i),
			do.MustInvoke[*metrics.Metrics](i),
		)
		svc.SetLogger(slog.Default().With("component", "forward"))
		return svc, nil
	})

	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := telegramHandler.New(cfg, do.MustInvoke[*forwardService.Service](i))
		handler.SetLogger(slog.Default().With("component", "telegram"))
		return handler, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(cfg, do.MustInvoke[*prometheus.Registry](i))
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown tears down every service that was built, in reverse dependency
// order: the HTTP server drains, then the dispatch client releases its
// connections. Services never invoked are not constructed. The bot stops
// polling when the context passed to Start is cancelled.
func Shutdown(ctx context.Context, injector do.Injector) error {
	if errs := injector.ShutdownWithContext(ctx); errs != nil {
		return oops.With("context", "failed to shut down services").Wrap(errs)
	}
	return nil
}
