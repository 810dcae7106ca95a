package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/public-garden-api/internal/config"
	"github.com/public-garden-api/internal/delivery/http/handler"
	"github.com/public-garden-api/internal/delivery/http/middleware"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	// Handlers
	gardenHandler  *handler.GardenHandler
	authHandler    *handler.AuthHandler
	statsHandler   *handler.StatsHandler
	insightHandler *handler.InsightHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	gardenHandler *handler.GardenHandler,
	authHandler *handler.AuthHandler,
	statsHandler *handler.StatsHandler,
	insightHandler *handler.InsightHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Public Garden API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		authUC:         authUC,
		gardenHandler:  gardenHandler,
		authHandler:    authHandler,
		statsHandler:   statsHandler,
		insightHandler: insightHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Публичная конфигурация для клиента
	api.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(dto.ConfigResponse{
			GoogleMapsAPIKey: s.config.GoogleMaps.APIKey,
		})
	})

	requireAdmin := middleware.RequireAdmin(s.authUC)

	// Garden routes
	api.Get("/gardens", s.gardenHandler.List)
	api.Post("/gardens", s.gardenHandler.Create)
	api.Get("/gardens/:id", s.gardenHandler.GetByID)
	api.Put("/gardens/:id/kidscount", s.gardenHandler.UpdateKidsCount)
	api.Put("/gardens/:id", requireAdmin, s.gardenHandler.Update)
	api.Delete("/gardens/:id", requireAdmin, s.gardenHandler.Delete)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.authHandler.Register)
	auth.Post("/login", s.authHandler.Login)
	auth.Get("/check-admin", requireAdmin, s.authHandler.CheckAdmin)

	// Insight proxy
	api.Post("/gemini-insight", s.insightHandler.GenerateInsight)

	// Stats routes
	stats := api.Group("/stats")
	stats.Post("/filter-click", s.statsHandler.RecordFilterClick)
	stats.Get("/filter-clicks", s.statsHandler.GetFilterClickStats)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber.App, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
