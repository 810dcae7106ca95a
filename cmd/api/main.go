package main

// @title Public Garden API
// @version 1.0.0
// @description Бэкенд каталога публичных садов и детских площадок. Предоставляет API для просмотра и пополнения каталога, обновления счётчика детей, администрирования записей, статистики использования фильтров и генерации описаний через языковую модель.

// @contact.name API Support
// @contact.email support@public-garden-api.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/public-garden-api/docs/swagger"
	"github.com/public-garden-api/internal/config"
	httpDelivery "github.com/public-garden-api/internal/delivery/http"
	"github.com/public-garden-api/internal/delivery/http/handler"
	"github.com/public-garden-api/internal/infrastructure/gemini"
	"github.com/public-garden-api/internal/infrastructure/googlemaps"
	"github.com/public-garden-api/internal/pkg/logger"
	"github.com/public-garden-api/internal/repository/cache"
	"github.com/public-garden-api/internal/repository/postgres"
	"github.com/public-garden-api/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Public Garden API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	if cfg.Auth.AdminSecretCode == config.DefaultAdminSecretCode {
		log.Warn("ADMIN_SECRET_CODE is not set, using default registration code")
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	gardenRepo := postgres.NewGardenRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	geocodingRepo := googlemaps.NewGeocodingClient(&cfg.GoogleMaps, log)
	insightRepo := gemini.NewInsightClient(&cfg.Gemini, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	authUC := usecase.NewAuthUseCase(adminRepo, log, &cfg.Auth)

	gardenUC := usecase.NewGardenUseCase(
		gardenRepo,
		geocodingRepo,
		cacheRepo,
		log,
		cfg.Cache.GardensCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		statsRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	insightUC := usecase.NewInsightUseCase(insightRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	gardenHandler := handler.NewGardenHandler(gardenUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	insightHandler := handler.NewInsightHandler(insightUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		gardenHandler,
		authHandler,
		statsHandler,
		insightHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
