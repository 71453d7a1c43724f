package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"netcheck/internal/cache"
	"netcheck/internal/config"
	"netcheck/internal/httpapi"
	"netcheck/internal/logging"
	"netcheck/internal/probe"
	"netcheck/internal/ratelimit"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.IsDebug())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store := cache.New()
	limiter := ratelimit.New(cfg.DefaultRPM, httpapi.RouteLimits())
	api := httpapi.NewServer(logger, probe.New(), store, limiter, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("api_listen",
			zap.String("addr", cfg.Addr),
			zap.String("mode", cfg.Mode))
		errc <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("serve failed", zap.Error(err))
		}
	case sig := <-stop:
		logger.Info("shutting_down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		shutdownErr := multierr.Combine(srv.Shutdown(ctx), logger.Sync())
		if shutdownErr != nil {
			log.Printf("shutdown: %v", shutdownErr)
		}
	}
}
