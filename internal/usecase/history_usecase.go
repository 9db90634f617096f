package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
)

// HistoryUseCase - доступ к сохранённым анализам.
// Без базы данных (historyRepo == nil) все операции возвращают HISTORY_DISABLED.
type HistoryUseCase struct {
	historyRepo repository.AnalysisRepository
	logger      *zap.Logger
}

func NewHistoryUseCase(historyRepo repository.AnalysisRepository, logger *zap.Logger) *HistoryUseCase {
	return &HistoryUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Get возвращает анализ по ID
func (uc *HistoryUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.SiteAnalysis, error) {
	if uc.historyRepo == nil {
		return nil, errors.ErrHistoryDisabled
	}

	a, err := uc.historyRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get analysis", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if a == nil {
		return nil, errors.ErrAnalysisNotFound.WithDetails(map[string]interface{}{
			"id": id.String(),
		})
	}
	return a, nil
}

// ListRecent возвращает последние анализы, новые первыми
func (uc *HistoryUseCase) ListRecent(ctx context.Context, limit int) ([]*domain.SiteAnalysis, error) {
	if uc.historyRepo == nil {
		return nil, errors.ErrHistoryDisabled
	}

	list, err := uc.historyRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list analyses", zap.Int("limit", limit), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}
