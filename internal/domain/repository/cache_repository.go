package repository

import (
	"context"
	"time"

	"github.com/bridge-site-analyzer/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetAnalysis получает анализ площадки по ключу входных данных.
	// Неразборчивая запись удаляется и считается промахом.
	GetAnalysis(ctx context.Context, key string) (*domain.SiteAnalysis, error)

	// SetAnalysis сохраняет анализ площадки
	SetAnalysis(ctx context.Context, key string, a *domain.SiteAnalysis, ttl time.Duration) error

	// GetGeocode получает результат геокодирования по нормализованному запросу
	GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error)

	// SetGeocode сохраняет результат геокодирования
	SetGeocode(ctx context.Context, query string, r *domain.GeocodeResult, ttl time.Duration) error
}
