// Package catalog - справочник заранее рассчитанных площадок, встроенный в бинарник.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"math"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// MatchTolerance - допуск совпадения координат с записью справочника, в градусах
const MatchTolerance = 0.5

//go:embed locations.yaml
var embeddedLocations []byte

type memoryRepository struct {
	locations []*domain.CatalogLocation
	byID      map[string]*domain.CatalogLocation
	logger    *zap.Logger
}

// NewEmbeddedRepository создает справочник из встроенного YAML
func NewEmbeddedRepository(logger *zap.Logger) (repository.CatalogRepository, error) {
	return NewRepository(embeddedLocations, logger)
}

// NewRepository создает справочник из YAML-документа
func NewRepository(data []byte, logger *zap.Logger) (repository.CatalogRepository, error) {
	locations, err := Parse(data)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.CatalogLocation, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}

	logger.Info("Catalog loaded", zap.Int("locations", len(locations)))

	return &memoryRepository{
		locations: locations,
		byID:      byID,
		logger:    logger,
	}, nil
}

// Parse разбирает и проверяет YAML справочника
func Parse(data []byte) ([]*domain.CatalogLocation, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var locations []*domain.CatalogLocation
	if err := dec.Decode(&locations); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(locations))
	for i, loc := range locations {
		if err := validate(loc); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := seen[loc.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, loc.ID)
		}
		seen[loc.ID] = struct{}{}
	}
	return locations, nil
}

func validate(loc *domain.CatalogLocation) error {
	switch {
	case loc == nil:
		return fmt.Errorf("empty entry")
	case loc.ID == "":
		return fmt.Errorf("missing id")
	case !loc.Point.IsValid():
		return fmt.Errorf("%s: invalid point %s", loc.ID, loc.Point)
	case !loc.Terrain.TerrainType.IsValid(), !loc.Terrain.SoilType.IsValid(), !loc.Terrain.LandslideRisk.IsValid():
		return fmt.Errorf("%s: invalid terrain", loc.ID)
	case !loc.Earthquakes.Frequency.IsValid(), !loc.Earthquakes.RiskLevel.IsValid():
		return fmt.Errorf("%s: invalid earthquake summary", loc.ID)
	case !loc.Geology.SeismicActivity.IsValid(), !loc.Geology.FaultLines.IsValid(),
		!loc.Geology.RockStability.IsValid(), !loc.Geology.ErosionRisk.IsValid(),
		!loc.Geology.WaterTable.IsValid():
		return fmt.Errorf("%s: invalid geology", loc.ID)
	}
	return nil
}

// Matches - строгое совпадение по обеим осям
func Matches(loc *domain.CatalogLocation, c domain.Coordinate) bool {
	return math.Abs(loc.Point.Lat-c.Lat) < MatchTolerance && math.Abs(loc.Point.Lng-c.Lng) < MatchTolerance
}

func (r *memoryRepository) FindNear(_ context.Context, c domain.Coordinate) (*domain.CatalogLocation, error) {
	for _, loc := range r.locations {
		if Matches(loc, c) {
			r.logger.Debug("Catalog match", zap.String("id", loc.ID))
			return clone(loc), nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*domain.CatalogLocation, error) {
	out := make([]*domain.CatalogLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		out = append(out, clone(loc))
	}
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*domain.CatalogLocation, error) {
	loc, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(loc), nil
}

// clone защищает справочник от изменений вызывающим кодом
func clone(loc *domain.CatalogLocation) *domain.CatalogLocation {
	cp := *loc
	return &cp
}

// EmbeddedDocument возвращает встроенный YAML справочника
func EmbeddedDocument() []byte {
	out := make([]byte, len(embeddedLocations))
	copy(out, embeddedLocations)
	return out
}
