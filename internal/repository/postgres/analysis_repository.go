package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type analysisRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAnalysisRepository создает хранилище истории анализов
func NewAnalysisRepository(db *DB) repository.AnalysisRepository {
	return &analysisRepository{
		db:     db,
		logger: db.logger,
	}
}

// Save сохраняет анализ; полный результат лежит в result (JSONB),
// ключевые поля вынесены в колонки для выборок
func (r *analysisRepository) Save(ctx context.Context, a *domain.SiteAnalysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	ranking := make([]string, 0, len(a.Suggestions))
	for _, s := range a.Suggestions {
		ranking = append(ranking, string(s.Archetype))
	}

	var catalogID sql.NullString
	if a.CatalogID != "" {
		catalogID = sql.NullString{String: a.CatalogID, Valid: true}
	}

	query := `INSERT INTO site_analyses
		(id, lat, lng, source, catalog_id, seismic_degraded, top_archetype, ranking, result, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.Point.Lat, a.Point.Lng, string(a.Source), catalogID, a.SeismicDegraded,
		string(a.TopArchetype()), pq.Array(ranking), payload, a.AnalyzedAt,
	)
	if err != nil {
		r.logger.Error("failed to save analysis", zap.String("id", a.ID.String()), zap.Error(err))
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteAnalysis, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `SELECT result FROM site_analyses WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get analysis", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	var a domain.SiteAnalysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("unmarshal analysis %s: %w", id, err)
	}
	return &a, nil
}

func (r *analysisRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SiteAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}

	var payloads [][]byte
	err := r.db.SelectContext(ctx, &payloads,
		`SELECT result FROM site_analyses ORDER BY analyzed_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("failed to list analyses", zap.Error(err))
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	out := make([]*domain.SiteAnalysis, 0, len(payloads))
	for _, p := range payloads {
		var a domain.SiteAnalysis
		if err := json.Unmarshal(p, &a); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		out = append(out, &a)
	}
	return out, nil
}
