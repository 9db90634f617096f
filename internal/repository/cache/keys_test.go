package cache

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisKey(t *testing.T) {
	day := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	p := domain.Coordinate{Lat: 30.7333, Lng: 79.0667}

	key := AnalysisKey(p, day)
	assert.True(t, strings.HasPrefix(key, "site:analysis:"))

	// та же точка в тот же UTC-день даёт тот же ключ
	assert.Equal(t, key, AnalysisKey(p, day.Add(10*time.Hour)))

	assert.NotEqual(t, key, AnalysisKey(p, day.AddDate(0, 0, 1)))
	assert.NotEqual(t, key, AnalysisKey(domain.Coordinate{Lat: 30.7334, Lng: 79.0667}, day))
	assert.NotEqual(t, key, AnalysisKey(domain.Coordinate{Lat: 79.0667, Lng: 30.7333}, day))
}

func TestAnalysisKey_CloseNeighboursDiffer(t *testing.T) {
	day := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	a := domain.Coordinate{Lat: 20.0000001, Lng: 100}
	b := domain.Coordinate{Lat: 20.0000002, Lng: 100}

	// у соседей в пределах 1e-6 разный рельеф, значит и записи кеша разные
	assert.NotEqual(t, analysis.ClassifyTerrain(a), analysis.ClassifyTerrain(b))
	assert.NotEqual(t, AnalysisKey(a, day), AnalysisKey(b, day))
}

func TestAnalysisKey_NegativeZero(t *testing.T) {
	day := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t,
		AnalysisKey(domain.Coordinate{Lat: 0, Lng: 10}, day),
		AnalysisKey(domain.Coordinate{Lat: math.Copysign(0, -1), Lng: 10}, day))
}

func TestGeocodeKey_Normalized(t *testing.T) {
	assert.Equal(t, GeocodeKey("Rishikesh, India"), GeocodeKey("  rishikesh,   INDIA "))
	assert.NotEqual(t, GeocodeKey("Rishikesh"), GeocodeKey("Munnar"))
	assert.Equal(t, "rishikesh, india", NormalizeQuery("  Rishikesh,\tIndia\n"))
}
