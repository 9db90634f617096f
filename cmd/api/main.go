package main

// @title Bridge Site Analyzer API
// @version 1.0.0
// @description Сервис оценки площадок под строительство моста. По координатам точки определяет рельеф, геологию и сейсмическую обстановку, ранжирует пять типов мостов и оценивает стоимость.
// @description
// @description Основные возможности:
// @description - Анализ площадки по координатам (справочник или вывод факторов)
// @description - Выбор площадки в сессии: побеждает последний запрос
// @description - Поиск места по названию и разбор строки координат
// @description - Справочник заранее рассчитанных площадок и история анализов

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/bridge-site-analyzer/docs/swagger"
	"github.com/bridge-site-analyzer/internal/app"
	"github.com/bridge-site-analyzer/internal/config"
	httpDelivery "github.com/bridge-site-analyzer/internal/delivery/http"
	"github.com/bridge-site-analyzer/internal/delivery/http/handler"
	"github.com/bridge-site-analyzer/internal/pkg/logger"
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

	log.Info("Starting Bridge Site Analyzer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("db_enabled", cfg.Database.Enabled),
	)

	// 3. Connect stores, build repositories and use cases
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	log.Info("Use cases initialized")

	// 4. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Site:    handler.NewSiteHandler(application.SiteAnalysis, application.Selection, cfg.Server.AnalysisTimeout, log),
		Search:  handler.NewSearchHandler(application.Search, log),
		Catalog: handler.NewCatalogHandler(application.Catalog, log),
		History: handler.NewHistoryHandler(application.History, log),
	}

	// 5. Health checks
	var checks []httpDelivery.HealthCheck
	if application.Redis != nil {
		checks = append(checks, httpDelivery.HealthCheck{Name: "redis", Check: application.Redis.Health})
	}
	if application.DB != nil {
		checks = append(checks, httpDelivery.HealthCheck{Name: "postgres", Check: application.DB.Health})
	}

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, checks...)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	application.Close()

	log.Info("Server stopped successfully")
}
