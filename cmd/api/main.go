package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/spksaw/backend/docs"
	"github.com/spksaw/backend/internal/auth/middleware"
	"github.com/spksaw/backend/internal/auth/token"
	"github.com/spksaw/backend/internal/config"
	"github.com/spksaw/backend/internal/database"
	"github.com/spksaw/backend/internal/handlers"
	"github.com/spksaw/backend/internal/logger"
	loggerMiddleware "github.com/spksaw/backend/internal/logger/middleware"
	sharedMiddleware "github.com/spksaw/backend/internal/middlewares"
	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/repositories"
	"github.com/spksaw/backend/internal/scheduler"
	"github.com/spksaw/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// tokenIssuer is the iss claim of every token issued by this service
const tokenIssuer = "spksaw"

// @title SPK SAW Backend API
// @version 1.0
// @description Authentication and organisational directory API

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Maintenance API key
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

	logger.Logger.Info("Starting SPK SAW backend")

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

	// Initialize revocation store and token authority
	store, closeStore, err := newRevocationStore(cfg, db)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize revocation store", zap.Error(err))
	}
	defer closeStore()

	authority, err := token.NewJWTAuthority(cfg.JWT.Secret, tokenIssuer, store)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize token authority", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	schoolRepo := repositories.NewSchoolRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, schoolRepo, authority, cfg.JWT.TTL(), logger.Logger)
	directoryService := services.NewDirectoryService(schoolRepo, userRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	schoolHandler := handlers.NewSchoolHandler(directoryService, logger.Logger)
	tokenCleaningHandler := handlers.NewTokenCleaningHandler(store, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(authority, logger.Logger)
	adminMiddleware := middleware.RoleMiddleware(authority, models.RoleAdmin, logger.Logger)
	apiKeyMiddleware := sharedMiddleware.APIKeyMiddleware(cfg.APIKey)

	// Start token purge job
	purger, err := scheduler.NewTokenPurger(store, cfg.Tokens.CleanupSchedule, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize token purger", zap.Error(err))
	}
	purger.Start()

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		// Register auth routes
		authHandler.RegisterRoutes(r, authMiddleware)
		// Register token cleaning routes with API key middleware
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			tokenCleaningHandler.RegisterRoutes(r)
		})
		// Register directory routes with role middleware
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			schoolHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")
	purger.Stop()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// newRevocationStore builds the configured revocation backend and a function releasing it
func newRevocationStore(cfg *config.Config, db *sql.DB) (token.RevocationStore, func(), error) {
	if cfg.Tokens.RevocationStore != config.RevocationStoreRedis {
		return repositories.NewRevokedTokenRepository(db), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Logger.Info("Using Redis revocation store", zap.String("addr", cfg.RedisAddr()))
	return token.NewRedisRevocationStore(rdb), func() { rdb.Close() }, nil
}
