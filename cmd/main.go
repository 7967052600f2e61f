package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreamfund/internal/adapter/distribution"
	httpadapter "dreamfund/internal/adapter/http"
	"dreamfund/internal/adapter/payout"
	"dreamfund/internal/adapter/postgres"
	"dreamfund/internal/adapter/usecase"
	"dreamfund/internal/agent"
	"dreamfund/internal/config"
	"dreamfund/internal/db"
	"dreamfund/internal/events"
	"dreamfund/internal/metrics"
)

// main is the entry point of the dreamfund service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and external-service clients, then starts the HTTP server and
// the settlement polling agent. On receiving a termination signal it
// gracefully shuts down.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	// Notification publishing is optional; without redis the feed is only
	// persisted.
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Enabled {
		redisClient, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()
		publisher = events.NewRedisPublisher(redisClient)
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	treasuryRepo := postgres.NewTreasuryRepository(pool)
	allowlistRepo := postgres.NewAllowlistRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	distributionClient := distribution.NewClient(cfg.Distribution.Addr, cfg.Distribution.Timeout)
	transferClient := payout.NewClient(cfg.Payout.Addr, cfg.Payout.Timeout)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	notifier := events.NewNotifier(notificationRepo, publisher, logger)

	ledger := usecase.NewLedgerUseCase(campaignRepo, allowlistRepo, transferClient, notifier, m, logger)
	funding := usecase.NewFundingUseCase(campaignRepo, treasuryRepo, notifier, m, logger)
	coordinator := usecase.NewCoordinatorUseCase(
		campaignRepo, treasuryRepo, distributionClient, notifier, m, logger,
		cfg.Automation.Interval, usecase.HandoffCadence(cfg.Automation.HandoffCadence),
	)
	admin := usecase.NewAdminUseCase(
		treasuryRepo, allowlistRepo, notificationRepo, transferClient, notifier, logger,
		cfg.Controller,
	)

	var metricsHandler http.Handler
	if m != nil {
		metricsHandler = m.Handler()
	}
	handler := httpadapter.NewHandler(ledger, funding, coordinator, admin, metricsHandler, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	if cfg.Automation.PollEnabled {
		poller, err := agent.NewPoller(coordinator, cfg.Automation.PollEvery, logger)
		if err != nil {
			logger.Error("poller init error", slog.Any("error", err))
			os.Exit(1)
		}
		if err = poller.Start(); err != nil {
			logger.Error("poller start error", slog.Any("error", err))
			os.Exit(1)
		}
		defer poller.Stop()
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
