package repository

import (
	"context"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/google/uuid"
)

// AnalysisRepository хранит историю выполненных анализов
type AnalysisRepository interface {
	// Save сохраняет анализ
	Save(ctx context.Context, a *domain.SiteAnalysis) error

	// GetByID возвращает анализ по ID; (nil, nil) если не найден
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteAnalysis, error)

	// ListRecent возвращает последние анализы, новые первыми
	ListRecent(ctx context.Context, limit int) ([]*domain.SiteAnalysis, error)
}
