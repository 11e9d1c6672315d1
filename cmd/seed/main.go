package main

import (
	"context"
	"log"
	"time"

	"github.com/spksaw/backend/internal/config"
	"github.com/spksaw/backend/internal/database"
	"github.com/spksaw/backend/internal/logger"
	"github.com/spksaw/backend/internal/seed"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := seed.NewSeeder(db, logger.Logger).Run(ctx)
	if err != nil {
		logger.Logger.Fatal("Failed to seed database", zap.Error(err))
	}

	logger.Logger.Info("Seeder finished",
		zap.Bool("skipped", result.Skipped),
		zap.Int("schools", result.Schools),
		zap.Int("users", result.Users),
	)
}
