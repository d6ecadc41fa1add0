package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/entarch/systems-catalog/internal/api"
	"github.com/entarch/systems-catalog/internal/infrastructure/config"
	"github.com/entarch/systems-catalog/internal/infrastructure/db/file"
	"github.com/entarch/systems-catalog/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("db_file", cfg.Catalog.DBFile).
		Msg("starting systems catalog API")

	store := file.NewStore(cfg.Catalog.DBFile, log)
	if err := store.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise catalog document")
	}

	e := api.NewRouter(store, log)

	// Shut down cleanly on SIGINT/SIGTERM, giving in-flight requests a
	// grace period to finish.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exiting")
}
