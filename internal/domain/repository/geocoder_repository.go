package repository

import (
	"context"

	"github.com/bridge-site-analyzer/internal/domain"
)

// GeocoderRepository определяет поиск координат по названию места
type GeocoderRepository interface {
	// Search возвращает лучшее совпадение; (nil, nil) если ничего не найдено
	Search(ctx context.Context, query string) (*domain.GeocodeResult, error)
}
