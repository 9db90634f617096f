package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/app"
	"github.com/bridge-site-analyzer/internal/config"
	"github.com/bridge-site-analyzer/internal/pkg/logger"
	redisRepo "github.com/bridge-site-analyzer/internal/repository/redis"
	"github.com/bridge-site-analyzer/internal/worker"
	"github.com/bridge-site-analyzer/internal/worker/site"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}
	if !cfg.Redis.Enabled {
		fmt.Println("Worker requires Redis streams. Set REDIS_ENABLED=true.")
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Site Analysis Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("concurrency", cfg.Worker.Concurrency))

	// 3. Connect stores and build use cases
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(initCtx, cfg, log)
	initCancel()
	if err != nil {
		log.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(application.Redis.Client(), cfg.Worker.StreamReadTimeout, log)

	// 5. Initialize workers
	analysisWorker := site.NewAnalysisWorker(
		streamRepo,
		application.SiteAnalysis,
		application.Search,
		site.Config{
			ConsumerGroup: cfg.Worker.ConsumerGroup,
			BatchSize:     cfg.Worker.BatchSize,
			Concurrency:   cfg.Worker.Concurrency,
			MaxRetries:    cfg.Worker.MaxRetries,
			ClaimMinIdle:  cfg.Worker.ClaimMinIdle,
		},
		log,
	)

	// 6. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(analysisWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Workers finish the current batch, then the context is cancelled
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
