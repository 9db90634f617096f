package repository

import (
	"context"

	"github.com/bridge-site-analyzer/internal/domain"
)

// CatalogRepository определяет доступ к справочнику заранее рассчитанных площадок
type CatalogRepository interface {
	// FindNear возвращает первую запись в пределах 0.5° по обеим осям; (nil, nil) если нет
	FindNear(ctx context.Context, c domain.Coordinate) (*domain.CatalogLocation, error)

	// List возвращает все записи в порядке справочника
	List(ctx context.Context) ([]*domain.CatalogLocation, error)

	// GetByID возвращает запись по идентификатору; (nil, nil) если нет
	GetByID(ctx context.Context, id string) (*domain.CatalogLocation, error)
}
