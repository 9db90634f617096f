// Package app собирает зависимости сервиса из конфигурации.
// Используется API, воркером и CLI.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/config"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/infrastructure/nominatim"
	"github.com/bridge-site-analyzer/internal/infrastructure/usgs"
	"github.com/bridge-site-analyzer/internal/repository/cache"
	"github.com/bridge-site-analyzer/internal/repository/catalog"
	"github.com/bridge-site-analyzer/internal/repository/postgres"
	"github.com/bridge-site-analyzer/internal/usecase"
)

// App - собранные подключения и use case'ы
type App struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *postgres.DB
	Redis *cache.Redis

	CatalogRepo repository.CatalogRepository

	SiteAnalysis *usecase.SiteAnalysisUseCase
	Selection    *usecase.SelectionTracker
	Search       *usecase.SearchUseCase
	Catalog      *usecase.CatalogUseCase
	History      *usecase.HistoryUseCase
}

// New подключает Redis и PostgreSQL (если включены) и собирает use case'ы.
// Без PostgreSQL справочник берётся из встроенного YAML, а история отключена.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: log}

	var (
		cacheRepo   repository.CacheRepository
		historyRepo repository.AnalysisRepository
	)

	if cfg.Redis.Enabled {
		r, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		a.Redis = r
		cacheRepo = cache.NewCacheRepository(r)
	} else {
		log.Warn("Redis disabled, caching is off")
	}

	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.DB = db

		locations, err := catalog.Parse(catalog.EmbeddedDocument())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("parse embedded catalog: %w", err)
		}
		if err := postgres.SeedCatalog(ctx, db, locations); err != nil {
			a.Close()
			return nil, err
		}
		log.Info("Catalog seeded", zap.Int("locations", len(locations)))

		a.CatalogRepo = postgres.NewCatalogRepository(db)
		historyRepo = postgres.NewAnalysisRepository(db)
	} else {
		repo, err := catalog.NewEmbeddedRepository(log)
		if err != nil {
			return nil, err
		}
		a.CatalogRepo = repo
		log.Warn("Database disabled, using embedded catalog without history")
	}

	seismic := usgs.NewClient(&cfg.Seismic, log)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	a.SiteAnalysis = usecase.NewSiteAnalysisUseCase(
		analysis.NewEngine(),
		a.CatalogRepo,
		seismic,
		cacheRepo,
		historyRepo,
		log,
		usecase.SiteAnalysisConfig{
			SeismicTimeout: cfg.Seismic.Timeout,
			RadiusKm:       cfg.Seismic.RadiusKm,
			MinMagnitude:   cfg.Seismic.MinMagnitude,
			MaxResults:     cfg.Seismic.Limit,
			CacheTTL:       cfg.Cache.AnalysisTTL,
		},
	)
	a.Selection = usecase.NewSelectionTracker(a.SiteAnalysis, log).WithIdleTTL(cfg.Server.SessionIdleTTL)
	a.Search = usecase.NewSearchUseCase(geocoder, cacheRepo, log, cfg.Cache.GeocodeTTL)
	a.Catalog = usecase.NewCatalogUseCase(a.CatalogRepo, log)
	a.History = usecase.NewHistoryUseCase(historyRepo, log)

	return a, nil
}

// Close закрывает открытые подключения
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
		a.DB = nil
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("Failed to close Redis connection", zap.Error(err))
		}
		a.Redis = nil
	}
}
