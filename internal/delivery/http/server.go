package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/config"
	"github.com/bridge-site-analyzer/internal/delivery/http/handler"
	"github.com/bridge-site-analyzer/internal/delivery/http/middleware"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
)

// HealthCheck - проверка зависимости для /health
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handlers - набор обработчиков API
type Handlers struct {
	Site    *handler.SiteHandler
	Search  *handler.SearchHandler
	Catalog *handler.CatalogHandler
	History *handler.HistoryHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	checks   []HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	checks ...HealthCheck,
) *Server {
	// запись ответа должна пережить полный анализ
	writeTimeout := cfg.Server.AnalysisTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "Bridge Site Analyzer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		checks:   checks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
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

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Site analysis
	api.Get("/sites/analysis", s.handlers.Site.Analyze)
	api.Post("/sites/analysis", s.handlers.Site.AnalyzePOST)

	// Sessions (last-query-wins selection)
	api.Post("/sessions/:session/selection", s.handlers.Site.Select)
	api.Get("/sessions/:session/selection", s.handlers.Site.GetSelection)
	api.Delete("/sessions/:session/selection", s.handlers.Site.DeleteSelection)

	// Search
	api.Get("/search", s.handlers.Search.Search)
	api.Get("/coordinates/parse", s.handlers.Search.ParseCoordinates)

	// Catalog
	api.Get("/catalog", s.handlers.Catalog.List)
	api.Get("/catalog/:id", s.handlers.Catalog.Get)

	// History
	api.Get("/analyses", s.handlers.History.List)
	api.Get("/analyses/:id", s.handlers.History.Get)
}

func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(fiber.Map, len(s.checks))
	for _, hc := range s.checks {
		if err := hc.Check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", hc.Name), zap.Error(err))
			deps[hc.Name] = err.Error()
			status = "degraded"
			continue
		}
		deps[hc.Name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
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

// customErrorHandler - ошибки Fiber (404 маршрута, 405, паники) в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appCode := errors.ErrInternalServer.Code

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code < fiber.StatusInternalServerError {
				appCode = errors.ErrInvalidRequest.Code
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    appCode,
				"message": err.Error(),
			},
		})
	}
}
