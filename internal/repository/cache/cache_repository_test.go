package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/repository/cache"
)

func getTestCache(t *testing.T) (*redis.Client, *cache.Redis) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_Miss(t *testing.T) {
	_, r := getTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	got, err := repo.GetAnalysis(ctx, "site:analysis:missing-"+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)

	geo, err := repo.GetGeocode(ctx, "nowhere "+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, geo)
}

func TestCacheRepository_AnalysisRoundTrip(t *testing.T) {
	client, r := getTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	p := domain.Coordinate{Lat: 26.2006, Lng: 92.9376}
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	engine := analysis.NewEngine()
	f := engine.DeriveWithSummary(p, domain.DefaultEarthquakeSummary())
	report := engine.Evaluate(p, f)

	original := &domain.SiteAnalysis{
		ID:            uuid.New(),
		Point:         p,
		Source:        domain.SourceDerived,
		Earthquakes:   f.Earthquakes,
		Terrain:       f.Terrain,
		Geology:       f.Geology,
		Suggestions:   report.Suggestions,
		CostEstimates: report.CostEstimates,
		Overview:      report.Overview,
		Insights:      report.Insights,
		CrossSection:  report.CrossSection,
		AnalyzedAt:    now,
	}

	key := cache.AnalysisKey(p, now)
	t.Cleanup(func() { client.Del(context.Background(), key) })

	require.NoError(t, repo.SetAnalysis(ctx, key, original, time.Minute))

	cached, err := repo.GetAnalysis(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, cached)

	assert.Equal(t, original.ID, cached.ID)
	assert.Equal(t, original.Terrain, cached.Terrain)
	assert.Equal(t, original.Geology, cached.Geology)
	assert.Equal(t, original.Suggestions, cached.Suggestions)
	assert.Equal(t, original.Insights, cached.Insights)
	assert.True(t, original.AnalyzedAt.Equal(cached.AnalyzedAt))
	require.Len(t, cached.CostEstimates, len(original.CostEstimates))
	for i := range original.CostEstimates {
		assert.True(t, original.CostEstimates[i].EstimatedCost.Equal(cached.CostEstimates[i].EstimatedCost))
	}

	require.NoError(t, client.Del(ctx, key).Err())
	cached, err = repo.GetAnalysis(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCacheRepository_CorruptEntryIsEvicted(t *testing.T) {
	client, r := getTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	key := cache.AnalysisKey(domain.Coordinate{Lat: 12.34, Lng: 56.78}, time.Now())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	require.NoError(t, client.Set(ctx, key, "{not json", time.Minute).Err())

	cached, err := repo.GetAnalysis(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, cached)

	n, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCacheRepository_GeocodeRoundTrip(t *testing.T) {
	client, r := getTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	query := "Munnar " + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), cache.GeocodeKey(query)) })

	res := &domain.GeocodeResult{Point: domain.Coordinate{Lat: 10.0889, Lng: 77.0595}, DisplayName: "Munnar, Kerala, India"}
	require.NoError(t, repo.SetGeocode(ctx, query, res, time.Minute))

	got, err := repo.GetGeocode(ctx, "  "+query+" ")
	require.NoError(t, err)
	assert.Equal(t, res, got)
}
