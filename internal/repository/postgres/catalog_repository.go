package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"go.uber.org/zap"
)

const catalogColumns = `id, name, lat, lng, image_url, description,
	elevation_m, slope_deg, terrain_type, soil_type, landslide_risk,
	eq_total, eq_recent, eq_max_magnitude, eq_frequency, eq_risk_level,
	seismic_activity, fault_lines, rock_stability, erosion_risk, water_table`

// catalogRow - плоская строка catalog_locations
type catalogRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	ImageURL    string `db:"image_url"`
	Description string `db:"description"`
	domain.Coordinate
	domain.TerrainProfile
	domain.EarthquakeSummary
	domain.GeologicalFactors
}

func (r catalogRow) toDomain() *domain.CatalogLocation {
	return &domain.CatalogLocation{
		ID:          r.ID,
		Name:        r.Name,
		Point:       r.Coordinate,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Terrain:     r.TerrainProfile,
		Earthquakes: r.EarthquakeSummary,
		Geology:     r.GeologicalFactors,
	}
}

type catalogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCatalogRepository создает справочник площадок поверх PostgreSQL
func NewCatalogRepository(db *DB) repository.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: db.logger,
	}
}

// FindNear - первая по position запись в пределах 0.5° по обеим осям
func (r *catalogRepository) FindNear(ctx context.Context, c domain.Coordinate) (*domain.CatalogLocation, error) {
	query := `SELECT ` + catalogColumns + `
		FROM catalog_locations
		WHERE abs(lat - $1) < 0.5 AND abs(lng - $2) < 0.5
		ORDER BY position
		LIMIT 1`

	var row catalogRow
	if err := r.db.GetContext(ctx, &row, query, c.Lat, c.Lng); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to find catalog location",
			zap.Float64("lat", c.Lat), zap.Float64("lng", c.Lng), zap.Error(err))
		return nil, fmt.Errorf("find catalog location: %w", err)
	}
	return row.toDomain(), nil
}

func (r *catalogRepository) List(ctx context.Context) ([]*domain.CatalogLocation, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_locations ORDER BY position`

	var rows []catalogRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("failed to list catalog", zap.Error(err))
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	out := make([]*domain.CatalogLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*domain.CatalogLocation, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_locations WHERE id = $1`

	var row catalogRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get catalog location", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get catalog location: %w", err)
	}
	return row.toDomain(), nil
}

// SeedCatalog записывает справочник в таблицу; порядок среза становится position
func SeedCatalog(ctx context.Context, db *DB, locations []*domain.CatalogLocation) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO catalog_locations (position, ` + catalogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position, name = EXCLUDED.name,
			lat = EXCLUDED.lat, lng = EXCLUDED.lng,
			image_url = EXCLUDED.image_url, description = EXCLUDED.description,
			elevation_m = EXCLUDED.elevation_m, slope_deg = EXCLUDED.slope_deg,
			terrain_type = EXCLUDED.terrain_type, soil_type = EXCLUDED.soil_type,
			landslide_risk = EXCLUDED.landslide_risk,
			eq_total = EXCLUDED.eq_total, eq_recent = EXCLUDED.eq_recent,
			eq_max_magnitude = EXCLUDED.eq_max_magnitude, eq_frequency = EXCLUDED.eq_frequency,
			eq_risk_level = EXCLUDED.eq_risk_level,
			seismic_activity = EXCLUDED.seismic_activity, fault_lines = EXCLUDED.fault_lines,
			rock_stability = EXCLUDED.rock_stability, erosion_risk = EXCLUDED.erosion_risk,
			water_table = EXCLUDED.water_table`

	for i, loc := range locations {
		t, eq, g := loc.Terrain, loc.Earthquakes, loc.Geology
		_, err := tx.ExecContext(ctx, upsert,
			i, loc.ID, loc.Name, loc.Point.Lat, loc.Point.Lng, loc.ImageURL, loc.Description,
			t.ElevationMeters, t.SlopeDegrees, string(t.TerrainType), string(t.SoilType), string(t.LandslideRisk),
			eq.Total, eq.Recent, eq.MaxMagnitude, string(eq.Frequency), string(eq.RiskLevel),
			string(g.SeismicActivity), string(g.FaultLines), string(g.RockStability), string(g.ErosionRisk), string(g.WaterTable),
		)
		if err != nil {
			return fmt.Errorf("seed %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	db.logger.Info("Catalog seeded", zap.Int("locations", len(locations)))
	return nil
}
