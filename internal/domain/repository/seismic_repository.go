package repository

import (
	"context"

	"github.com/bridge-site-analyzer/internal/domain"
)

// SeismicRepository определяет источник исторических землетрясений
type SeismicRepository interface {
	// FetchEvents возвращает события в радиусе от точки.
	// Ошибки сети, таймауты и неразборчивые ответы возвращаются как error.
	FetchEvents(ctx context.Context, q domain.SeismicQuery) ([]domain.SeismicEvent, error)
}
