package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/investment-advisor/internal/clients/openrouter"
	"github.com/aristath/investment-advisor/internal/config"
	"github.com/aristath/investment-advisor/internal/modules/advisor"
	"github.com/aristath/investment-advisor/internal/modules/allocation"
	"github.com/aristath/investment-advisor/internal/modules/comparison"
	"github.com/aristath/investment-advisor/internal/modules/narrative"
	"github.com/aristath/investment-advisor/internal/modules/projection"
	"github.com/aristath/investment-advisor/internal/server"
	"github.com/aristath/investment-advisor/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error"})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Investment Advisor")

	// Narrative completer: nil when the credential is absent, which makes
	// the narrative service degrade to the fallback note.
	var completer narrative.Completer
	if cfg.NarrativeEnabled() {
		completer = openrouter.NewClient(openrouter.Config{
			URL:     cfg.OpenRouterURL,
			APIKey:  cfg.OpenRouterAPIKey,
			Model:   cfg.NarrativeModel,
			Timeout: cfg.NarrativeTimeout,
		}, log)
	} else {
		log.Warn().Msg("OPENROUTER_API_KEY not set, advisor notes will use the fallback text")
	}

	// Wire the pipeline
	projService := projection.NewService(log)
	advisorService := advisor.NewService(
		allocation.NewService(log),
		projService,
		comparison.NewService(projService, log),
		narrative.NewService(completer, log),
		log,
	)

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		Config:  cfg,
		Advisor: advisor.NewHandler(advisorService, log),
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
