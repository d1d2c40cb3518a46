package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/internal/email"
	"github.com/jwalitptl/doctor-channel/internal/service/event"
	"github.com/jwalitptl/doctor-channel/internal/worker"
	"github.com/jwalitptl/doctor-channel/pkg/logger"
)

func setupHealthCheck(port int, reg *prometheus.Registry, running *atomic.Bool, l zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if !running.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error().Err(err).Msg("health check server failed")
		}
	}()
	return srv
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	appLogger := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	broker, err := event.NewBroker(ctx, cfg, logger.Component("broker"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to message broker")
	}
	defer broker.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	emailSvc := email.NewService(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	w := worker.NewNotificationWorker(broker, cfg.Events.Channel, emailSvc, appLogger, reg)

	var running atomic.Bool
	healthSrv := setupHealthCheck(cfg.Worker.HealthPort, reg, &running, appLogger)

	running.Store(true)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error().Err(err).Msg("worker stopped with error")
	}
	running.Store(false)

	appLogger.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("health server forced to shutdown")
	}
}
