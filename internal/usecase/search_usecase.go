package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// SearchUseCase - use case для поиска места по названию
type SearchUseCase struct {
	geocoder  repository.GeocoderRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase; cacheRepo может быть nil
func NewSearchUseCase(
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Search ищет лучшее совпадение. Отсутствие совпадения - LOCATION_NOT_FOUND,
// ошибка геокодера - GEOCODER_UNAVAILABLE. Промахи не кешируются.
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"q": "must not be empty",
		})
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetGeocode(ctx, query)
		if err != nil {
			uc.logger.Warn("Failed to read geocode cache", zap.String("query", query), zap.Error(err))
		} else if cached != nil {
			return &dto.SearchResponse{Result: cached, Cached: true}, nil
		}
	}

	result, err := uc.geocoder.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Geocoder request failed", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrGeocoderUnavailable
	}
	if result == nil {
		return nil, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{
			"query": query,
		})
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetGeocode(ctx, query, result, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geocode result", zap.String("query", query), zap.Error(err))
		}
	}

	return &dto.SearchResponse{Result: result}, nil
}
