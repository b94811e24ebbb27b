package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/totallife/clinical-api/internal/config"
	appointmentHandler "github.com/totallife/clinical-api/internal/handler/appointment"
	clinicianHandler "github.com/totallife/clinical-api/internal/handler/clinician"
	"github.com/totallife/clinical-api/internal/handler/health"
	patientHandler "github.com/totallife/clinical-api/internal/handler/patient"
	promHandler "github.com/totallife/clinical-api/internal/handler/prometheus"
	"github.com/totallife/clinical-api/internal/middleware"
	"github.com/totallife/clinical-api/internal/npi"
	"github.com/totallife/clinical-api/internal/repository/postgres"
	"github.com/totallife/clinical-api/internal/router"
	appointmentService "github.com/totallife/clinical-api/internal/service/appointment"
	clinicianService "github.com/totallife/clinical-api/internal/service/clinician"
	eventService "github.com/totallife/clinical-api/internal/service/event"
	patientService "github.com/totallife/clinical-api/internal/service/patient"
	"github.com/totallife/clinical-api/pkg/logger"
	"github.com/totallife/clinical-api/pkg/messaging"
	"github.com/totallife/clinical-api/pkg/messaging/redis"
	"github.com/totallife/clinical-api/pkg/metrics"
	"github.com/totallife/clinical-api/pkg/validator"
)

const metricsNamespace = "clinical_api"

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    "clinical-api",
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runMigrations(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("schema is up to date")
	return nil
}

func runServer(ctx context.Context, cfg *config.Config, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(metricsNamespace, registry)

	// Change events are optional
	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.Redis.URL != "" {
		publisher, err = redis.NewRedisPublisher(ctx, redis.Config{URL: cfg.Redis.URL})
		if err != nil {
			return err
		}
		log.Info().Str("channel", cfg.Redis.Channel).Msg("publishing change events")
	}
	defer publisher.Close()
	events := eventService.NewEventService(publisher, cfg.Redis.Channel, m)

	// Initialize repositories
	base := postgres.NewBaseRepository(db, m)
	clinicianRepo := postgres.NewClinicianRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)

	// Initialize services
	v := validator.New()
	registryClient := npi.NewClient(npi.Config{
		BaseURL: cfg.Registry.BaseURL,
		Version: cfg.Registry.Version,
		Timeout: cfg.Registry.Timeout,
	}, m)
	clinicianSvc := clinicianService.NewService(clinicianRepo, registryClient, events)
	patientSvc := patientService.NewService(patientRepo, v, events)
	appointmentSvc := appointmentService.NewService(appointmentRepo, v, events)

	gin.SetMode(gin.ReleaseMode)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(router.Handlers{
		Clinician:   clinicianHandler.NewHandler(clinicianSvc),
		Patient:     patientHandler.NewHandler(patientSvc),
		Appointment: appointmentHandler.NewHandler(appointmentSvc),
		Health:      health.NewHandler(db),
		Metrics:     promHandler.New(registry),
	}, router.RouterConfig{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig:     corsConfig,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Metrics:        m,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
