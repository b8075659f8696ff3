// Package main is the entry point for the delvegen terminal game.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delvegen/internal/config"
	"github.com/samdwyer/delvegen/internal/game"
	"github.com/samdwyer/delvegen/internal/logger"
	"github.com/samdwyer/delvegen/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "delvegen.yaml", "Path to the config file")
	seed := flag.Int64("seed", 0, "Generation seed, overrides the config value (0 means random)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_DELVEGEN_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	telemetry.SetupEnv()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Warning: config not loaded, using defaults: %v", err)
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	// The game owns the terminal, so console logging would corrupt the
	// display. File logging still works when enabled.
	cfg.Logging.ConsoleEnabled = false
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("Error shutting down telemetry", "error", err)
			}
		}()
	}

	g, err := game.New(game.Config{
		Width:  cfg.Generator.Width,
		Height: cfg.Generator.Height,
		Seed:   cfg.Generator.Seed,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	logger.Info("Starting game",
		"width", cfg.Generator.Width,
		"height", cfg.Generator.Height,
		"seed", cfg.Generator.Seed)

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}
