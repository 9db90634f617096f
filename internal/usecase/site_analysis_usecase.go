package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/repository/cache"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// SiteAnalysisConfig - параметры анализа площадки
type SiteAnalysisConfig struct {
	SeismicTimeout time.Duration
	RadiusKm       float64
	MinMagnitude   float64
	MaxResults     int
	CacheTTL       time.Duration
}

// SiteAnalysisUseCase - анализ площадки под мост.
// Справочник имеет приоритет над выводом факторов; запрос к сейсмическому
// источнику ограничен таймаутом и при любой ошибке заменяется сводкой по умолчанию.
type SiteAnalysisUseCase struct {
	engine      *analysis.Engine
	catalogRepo repository.CatalogRepository
	seismicRepo repository.SeismicRepository
	cacheRepo   repository.CacheRepository
	historyRepo repository.AnalysisRepository
	logger      *zap.Logger
	cfg         SiteAnalysisConfig
	now         func() time.Time
	group       singleflight.Group
}

// NewSiteAnalysisUseCase создает SiteAnalysisUseCase.
// cacheRepo и historyRepo могут быть nil: тогда кеш и история отключены.
func NewSiteAnalysisUseCase(
	engine *analysis.Engine,
	catalogRepo repository.CatalogRepository,
	seismicRepo repository.SeismicRepository,
	cacheRepo repository.CacheRepository,
	historyRepo repository.AnalysisRepository,
	logger *zap.Logger,
	cfg SiteAnalysisConfig,
) *SiteAnalysisUseCase {
	if cfg.SeismicTimeout <= 0 {
		cfg.SeismicTimeout = 8 * time.Second
	}
	return &SiteAnalysisUseCase{
		engine:      engine,
		catalogRepo: catalogRepo,
		seismicRepo: seismicRepo,
		cacheRepo:   cacheRepo,
		historyRepo: historyRepo,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (uc *SiteAnalysisUseCase) WithClock(now func() time.Time) *SiteAnalysisUseCase {
	uc.now = now
	return uc
}

// Analyze выполняет анализ точки.
// Одинаковые одновременные запросы выполняются один раз; вызывающий, чей
// контекст отменён, получает ctx.Err(), а расчёт доводится до конца для остальных.
func (uc *SiteAnalysisUseCase) Analyze(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
	if !utils.ValidateCoordinates(c.Lat, c.Lng) {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": c.Lat,
			"lng": c.Lng,
		})
	}

	now := uc.now()
	key := cache.AnalysisKey(c, now)

	if cached := uc.fromCache(ctx, key); cached != nil {
		return &dto.AnalysisResponse{Analysis: cached, Cached: true}, nil
	}

	ch := uc.group.DoChan(key, func() (interface{}, error) {
		// расчёт не привязан к отмене первого вызывающего
		return uc.compute(context.WithoutCancel(ctx), key, c, now)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return &dto.AnalysisResponse{Analysis: res.Val.(*domain.SiteAnalysis)}, nil
	}
}

func (uc *SiteAnalysisUseCase) fromCache(ctx context.Context, key string) *domain.SiteAnalysis {
	if uc.cacheRepo == nil {
		return nil
	}
	a, err := uc.cacheRepo.GetAnalysis(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read analysis from cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	return a
}

func (uc *SiteAnalysisUseCase) compute(
	ctx context.Context,
	key string,
	c domain.Coordinate,
	now time.Time,
) (*domain.SiteAnalysis, error) {
	result := &domain.SiteAnalysis{
		ID:         uuid.New(),
		Point:      c,
		AnalyzedAt: now.UTC(),
	}

	loc, err := uc.catalogRepo.FindNear(ctx, c)
	if err != nil {
		uc.logger.Error("Failed to look up catalog",
			zap.Float64("lat", c.Lat),
			zap.Float64("lng", c.Lng),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var factors domain.SiteFactors
	if loc != nil {
		result.Source = domain.SourceCatalog
		result.CatalogID = loc.ID
		result.CatalogName = loc.Name
		factors = domain.SiteFactors{
			Earthquakes: loc.Earthquakes,
			Terrain:     loc.Terrain,
			Geology:     loc.Geology,
		}
	} else {
		result.Source = domain.SourceDerived
		factors, result.SeismicDegraded = uc.derive(ctx, c, now)
	}

	report := uc.engine.Evaluate(c, factors)

	result.Earthquakes = factors.Earthquakes
	result.Terrain = factors.Terrain
	result.Geology = factors.Geology
	result.Suggestions = report.Suggestions
	result.CostEstimates = report.CostEstimates
	result.Overview = report.Overview
	result.Insights = report.Insights
	result.CrossSection = report.CrossSection

	uc.logger.Info("Site analyzed",
		zap.String("id", result.ID.String()),
		zap.Float64("lat", c.Lat),
		zap.Float64("lng", c.Lng),
		zap.String("source", string(result.Source)),
		zap.Bool("seismic_degraded", result.SeismicDegraded),
		zap.String("top", string(result.TopArchetype())))

	uc.persist(ctx, key, result)
	return result, nil
}

// derive выводит факторы по координате: сейсмика и рельеф считаются параллельно
func (uc *SiteAnalysisUseCase) derive(ctx context.Context, c domain.Coordinate, now time.Time) (domain.SiteFactors, bool) {
	var (
		summary  domain.EarthquakeSummary
		degraded bool
		terrain  domain.TerrainProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, degraded = uc.summarize(gctx, c, now)
		return nil
	})
	g.Go(func() error {
		terrain = analysis.ClassifyTerrain(c)
		return nil
	})
	_ = g.Wait()

	return domain.SiteFactors{
		Earthquakes: summary,
		Terrain:     terrain,
		Geology:     analysis.EstimateGeology(c, summary),
	}, degraded
}

// summarize запрашивает события; любая ошибка даёт сводку по умолчанию
func (uc *SiteAnalysisUseCase) summarize(ctx context.Context, c domain.Coordinate, now time.Time) (domain.EarthquakeSummary, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, uc.cfg.SeismicTimeout)
	defer cancel()

	events, err := uc.seismicRepo.FetchEvents(fetchCtx, domain.SeismicQuery{
		Point:        c,
		RadiusKm:     uc.cfg.RadiusKm,
		MinMagnitude: uc.cfg.MinMagnitude,
		MaxResults:   uc.cfg.MaxResults,
	})
	if err != nil {
		uc.logger.Warn("Seismic source unavailable, using default summary",
			zap.Float64("lat", c.Lat),
			zap.Float64("lng", c.Lng),
			zap.Duration("timeout", uc.cfg.SeismicTimeout),
			zap.Error(err))
		return domain.DefaultEarthquakeSummary(), true
	}

	return analysis.SummarizeEarthquakes(events, now), false
}

// persist пишет результат в историю и кеш; сбои не влияют на ответ
func (uc *SiteAnalysisUseCase) persist(ctx context.Context, key string, a *domain.SiteAnalysis) {
	if uc.historyRepo != nil {
		if err := uc.historyRepo.Save(ctx, a); err != nil {
			uc.logger.Warn("Failed to save analysis history", zap.String("id", a.ID.String()), zap.Error(err))
		}
	}

	// деградированный результат не кешируется: источник может восстановиться
	if uc.cacheRepo == nil || a.SeismicDegraded {
		return
	}
	if err := uc.cacheRepo.SetAnalysis(ctx, key, a, uc.cfg.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache analysis", zap.String("key", key), zap.Error(err))
	}
}
