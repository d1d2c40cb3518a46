package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doctor-channel/internal/config"
	appointmentHandler "github.com/jwalitptl/doctor-channel/internal/handler/appointment"
	authHandler "github.com/jwalitptl/doctor-channel/internal/handler/auth"
	"github.com/jwalitptl/doctor-channel/internal/handler/docs"
	doctorHandler "github.com/jwalitptl/doctor-channel/internal/handler/doctor"
	"github.com/jwalitptl/doctor-channel/internal/handler/health"
	"github.com/jwalitptl/doctor-channel/internal/handler/prometheus"
	scheduleHandler "github.com/jwalitptl/doctor-channel/internal/handler/schedule"
	"github.com/jwalitptl/doctor-channel/internal/middleware"
	"github.com/jwalitptl/doctor-channel/internal/router"
	appointmentService "github.com/jwalitptl/doctor-channel/internal/service/appointment"
	authService "github.com/jwalitptl/doctor-channel/internal/service/auth"
	doctorService "github.com/jwalitptl/doctor-channel/internal/service/doctor"
	eventService "github.com/jwalitptl/doctor-channel/internal/service/event"
	scheduleService "github.com/jwalitptl/doctor-channel/internal/service/schedule"
	"github.com/jwalitptl/doctor-channel/pkg/auth"
	"github.com/jwalitptl/doctor-channel/pkg/logger"
	"github.com/jwalitptl/doctor-channel/pkg/metrics"
	"github.com/jwalitptl/doctor-channel/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	appLogger := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open store")
	}

	// Events
	broker, err := eventService.NewBroker(ctx, cfg, logger.Component("broker"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to message broker")
	}

	promHandler := prometheus.New()
	appMetrics := metrics.New("doctor_channel", promHandler.Registry())
	eventSvc := eventService.NewEventService(broker, cfg.Events.Channel, appMetrics, logger.Component("events"))

	// Services
	appointmentSvc := appointmentService.NewService(store.Appointments(), eventSvc, appMetrics, appointmentService.Config{
		EnforceSlotUniqueness: cfg.Booking.EnforceSlotUniqueness,
		SlotWindow:            cfg.Booking.SlotWindow,
	})
	doctorSvc := doctorService.NewService(store.Doctors(), cfg.Cache.DoctorTTL, cfg.Cache.CleanupInterval)
	scheduleSvc := scheduleService.NewService(store.Schedules())
	authSvc := authService.NewService(
		store.Users(),
		auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry),
		security.NewBcryptHasher(cfg.Auth.BcryptCost),
	)

	if cfg.Database.SeedDoctors {
		if err := doctorSvc.Seed(ctx, doctorService.DefaultDoctors); err != nil {
			log.Fatal().Err(err).Msg("failed to seed doctor directory")
		}
	}
	if err := authSvc.EnsureBootstrapAdmin(ctx, authService.BootstrapAdmin{
		Email:    cfg.Auth.BootstrapAdmin.Email,
		Password: cfg.Auth.BootstrapAdmin.Password,
		FullName: cfg.Auth.BootstrapAdmin.FullName,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to create bootstrap admin")
	}

	// HTTP
	docsHandler, err := docs.NewHandler()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load API document")
	}
	r := router.NewRouter(
		router.ConfigFrom(cfg),
		logger.Component("http"),
		middleware.NewAuthMiddleware(authSvc),
		health.NewHandler(store),
		promHandler,
		authHandler.NewHandler(authSvc),
		doctorHandler.NewHandler(doctorSvc),
		scheduleHandler.NewHandler(scheduleSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		docsHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := broker.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close broker")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}

	appLogger.Info().Msg("server exited properly")
}
