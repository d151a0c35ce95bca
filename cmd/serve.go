package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KasumiMercury/primind-sleep-remind/internal/app"
	"github.com/KasumiMercury/primind-sleep-remind/internal/config"
	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/kvstore"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/notification"
	"github.com/KasumiMercury/primind-sleep-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/middleware"
	"github.com/KasumiMercury/primind-sleep-remind/internal/observability/tracing"
)

const shutdownTimeout = 30 * time.Second

type ServeCmd struct{}

type notificationGateway interface {
	domain.NotificationGateway
	io.Closer
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.PubSub.Validate(); err != nil {
		return fmt.Errorf("pubsub configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    serviceName(),
		ServiceVersion: Version,
		Environment:    os.Getenv("ENV"),
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	tp.Install()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown tracer provider", "error", err)
		}
	}()

	store, err := kvstore.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	gateway, err := initGateway(ctx, cfg, store)
	if err != nil {
		return fmt.Errorf("notification gateway: %w", err)
	}

	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Warn("failed to close notification gateway", "error", err)
		}
	}()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		return fmt.Errorf("publisher: %w", err)
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	calculator, err := domain.NewTriggerCalculator(cfg.Scheduler.GuardBand)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()

	var (
		recorder    metrics.Recorder = metrics.NoopRecorder{}
		httpMetrics *metrics.HTTPMetrics
	)

	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		recorder = metrics.NewPrometheusRecorder(registry)
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	useCase := app.NewSleepReminderUseCase(gateway, repository.NewScheduleRepository(store),
		app.WithTriggerCalculator(calculator),
		app.WithSweepPolicy(app.NewSweepPolicy(cfg.Scheduler.SweepAttempts, cfg.Scheduler.SweepBackoff)),
		app.WithPublisher(publisher),
		app.WithRecorder(recorder),
	)

	if err := useCase.Initialize(ctx); err != nil {
		if !errors.Is(err, app.ErrPermissionDenied) {
			return fmt.Errorf("initialize: %w", err)
		}

		slog.Warn("notification permission denied, reminders stay disarmed until granted")
	}

	router := setupRouter(cfg, handler.NewSleepHandler(useCase), registry, httpMetrics)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server",
			"address", cfg.Server.Address(),
			"platform", string(cfg.Notification.Platform),
			"store", string(cfg.Store.Backend),
		)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}

		slog.Info("server exited properly")

		return nil

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}

func initGateway(ctx context.Context, cfg *config.Config, store kvstore.Store) (notificationGateway, error) {
	switch cfg.Notification.Platform {
	case config.PlatformPush:
		gateway, err := notification.NewPushGateway(ctx, notification.PushGatewayConfig{
			URL:         cfg.Notification.PushNatsURL,
			Bucket:      cfg.Notification.PushBucket,
			DeviceToken: cfg.Notification.DeviceToken,
		})
		if err != nil {
			return nil, err
		}

		return gateway, nil

	default:
		gateway, err := notification.NewLocalGateway(store, notification.NewNotifier())
		if err != nil {
			return nil, err
		}

		if err := gateway.Start(ctx); err != nil {
			_ = gateway.Close()

			return nil, err
		}

		return gateway, nil
	}
}

func setupRouter(cfg *config.Config, sleepHandler *handler.SleepHandler, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.PanicRecoveryGin(),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:   []string{"/ping", "/metrics"},
			Module:      logging.Module("sleep"),
			TracerName:  serviceName(),
			HTTPMetrics: httpMetrics,
		}),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	}

	v1 := router.Group("/api/v1")
	sleepHandler.RegisterRoutes(v1)

	return router
}
