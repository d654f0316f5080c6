// Package main is the entry point for Lost Cities.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/lostcities/internal/app"
	"github.com/samdwyer/lostcities/internal/config"
	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/logging"
	"github.com/samdwyer/lostcities/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	g, err := game.New(game.Config{Seed: cfg.Seed}, game.WithLogger(logger.Named("game")))
	if err != nil {
		logger.Fatal("failed to initialize game", zap.Error(err))
	}

	a, err := app.New(g, logger.Named("app"))
	if err != nil {
		logger.Fatal("failed to open terminal", zap.Error(err))
	}

	runErr := a.Run(ctx)
	a.Close()
	if runErr != nil {
		logger.Error("game error", zap.Error(runErr))
	}
}
