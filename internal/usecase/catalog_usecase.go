package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// CatalogUseCase - чтение справочника площадок
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogUseCase(catalogRepo repository.CatalogRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает справочник в исходном порядке; если from задан,
// у каждой записи заполняется расстояние в километрах
func (uc *CatalogUseCase) List(ctx context.Context, from *domain.Coordinate) ([]dto.CatalogEntry, error) {
	if from != nil && !utils.ValidateCoordinates(from.Lat, from.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	locations, err := uc.catalogRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list catalog", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	entries := make([]dto.CatalogEntry, 0, len(locations))
	for _, loc := range locations {
		entry := dto.CatalogEntry{CatalogLocation: loc}
		if from != nil {
			d := utils.HaversineDistance(from.Lat, from.Lng, loc.Point.Lat, loc.Point.Lng)
			entry.DistanceKm = &d
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get возвращает запись по идентификатору
func (uc *CatalogUseCase) Get(ctx context.Context, id string) (*domain.CatalogLocation, error) {
	loc, err := uc.catalogRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get catalog entry", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if loc == nil {
		return nil, errors.ErrCatalogEntryNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	return loc, nil
}
