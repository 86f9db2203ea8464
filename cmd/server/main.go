package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhive/todo-api/internal/api"
	"github.com/taskhive/todo-api/internal/infrastructure/config"
	"github.com/taskhive/todo-api/internal/infrastructure/db/sqlite"
	"github.com/taskhive/todo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		// No configured logger yet; a default one keeps the failure structured.
		fallback := logger.New(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.Database.DSN).Msg("failed to open database")
	}
	defer db.Close()

	e := api.NewRouter(db, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
