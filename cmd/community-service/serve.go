package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/digital-house/community-service/internal/api/http"
	"github.com/digital-house/community-service/internal/api/http/handlers"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/cache"
	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/observability"
	"github.com/digital-house/community-service/internal/persistence"
	"github.com/digital-house/community-service/internal/repository"
	"github.com/digital-house/community-service/internal/service"
	"github.com/digital-house/community-service/internal/webhook"
	"github.com/digital-house/community-service/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the webhook worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = version
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	requestRepo := repository.NewHelpRequestRepository(pool)
	responseRepo := repository.NewHelpResponseRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	helpService := service.NewHelpRequestService(service.HelpRequestDependencies{
		RequestRepo:  requestRepo,
		ResponseRepo: responseRepo,
		Cache:        cache.NewHelpRequestCache(redis.Client, cfg.HelpDesk.CacheTTL()),
		Dispatcher:   dispatcher,
		Logger:       logger,
		Config:       cfg.HelpDesk,
	})
	announcementService := service.NewAnnouncementService(announcementRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, webhook.NewRedisPublisher(redis.Client), logger, cfg.Notification)

	var delivery worker.Runner
	if cfg.Notification.WebhookURL != "" {
		delivery = webhook.NewWorker(redis.Client, logger, webhook.WorkerConfig{
			URL:        cfg.Notification.WebhookURL,
			Secret:     cfg.Notification.WebhookSecret,
			MaxRetries: cfg.Notification.WebhookMaxRetries,
			BaseDelay:  cfg.Notification.WebhookBaseDelay(),
			Timeout:    cfg.Notification.WebhookTimeout(),
		}).WithRecorder(metrics)
	}
	notificationWorker := worker.NewNotificationWorker(notificationService, delivery, logger)
	notificationWorker.Start(ctx)

	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth.CookieSecure),
		HelpRequests:   handlers.NewHelpRequestsHandler(helpService, cfg.HelpDesk.DefaultPageSize),
		Announcements:  handlers.NewAnnouncementsHandler(announcementService),
		Features:       handlers.NewFeaturesHandler(cfg.Features),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), userRepo),
		Flags:          cfg.Features,
		Metrics:        metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		stop()
		notificationWorker.Wait()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	notificationWorker.Wait()
	return nil
}
