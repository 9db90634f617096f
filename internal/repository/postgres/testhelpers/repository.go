package testhelpers

import (
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCatalogRepositoryForTest creates a catalog repository with test database and logger
func NewCatalogRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CatalogRepository {
	return postgres.NewCatalogRepository(NewDBForTest(db, logger))
}

// NewAnalysisRepositoryForTest creates an analysis repository with test database and logger
func NewAnalysisRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AnalysisRepository {
	return postgres.NewAnalysisRepository(NewDBForTest(db, logger))
}
