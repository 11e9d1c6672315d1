package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spksaw/backend/internal/config"
	"github.com/spksaw/backend/internal/database"
	"github.com/spksaw/backend/internal/logger"
	"github.com/spksaw/backend/internal/repositories"
	"github.com/spksaw/backend/internal/services"
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

	os.Exit(run(cfg))
}

// run performs the check and returns the process exit code
func run(cfg *config.Config) int {
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Error("Failed to connect to database", zap.Error(err))
		fmt.Fprintf(os.Stdout, "Database connection failed: %v\n", err)
		return 1
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	checker := services.NewSetupCheckService(
		repositories.NewUserRepository(db, logger.Logger),
		repositories.NewSchoolRepository(db, logger.Logger),
		cfg.JWT.Secret,
		cfg.JWT.TTLMinutes,
	)

	report, err := checker.Check(ctx)
	if err != nil {
		logger.Logger.Error("Setup check failed", zap.Error(err))
		fmt.Fprintf(os.Stdout, "Setup check failed: %v\n", err)
		return 1
	}

	printReport(os.Stdout, report)
	if !report.OK() {
		return 1
	}
	return 0
}
