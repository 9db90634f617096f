package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bridge-site-analyzer/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetAnalysis(ctx context.Context, key string) (*domain.SiteAnalysis, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteAnalysis), args.Error(1)
}

func (m *MockCacheRepository) SetAnalysis(ctx context.Context, key string, a *domain.SiteAnalysis, ttl time.Duration) error {
	args := m.Called(ctx, key, a, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, query string, r *domain.GeocodeResult, ttl time.Duration) error {
	args := m.Called(ctx, query, r, ttl)
	return args.Error(0)
}

// MockSeismicRepository is a mock of SeismicRepository
type MockSeismicRepository struct {
	mock.Mock
}

func (m *MockSeismicRepository) FetchEvents(ctx context.Context, q domain.SeismicQuery) ([]domain.SeismicEvent, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeismicEvent), args.Error(1)
}

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) Search(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindNear(ctx context.Context, c domain.Coordinate) (*domain.CatalogLocation, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogLocation), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]*domain.CatalogLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CatalogLocation), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id string) (*domain.CatalogLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogLocation), args.Error(1)
}

// MockAnalysisRepository is a mock of AnalysisRepository
type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Save(ctx context.Context, a *domain.SiteAnalysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteAnalysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteAnalysis), args.Error(1)
}

func (m *MockAnalysisRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SiteAnalysis, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SiteAnalysis), args.Error(1)
}
