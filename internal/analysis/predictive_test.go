package analysis_test

import (
	"testing"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPredict_Himalaya(t *testing.T) {
	p := domain.Coordinate{Lat: 30.7333, Lng: 79.0667}
	got := analysis.Predict(p, himalayaFactors())

	assert.Equal(t, domain.PredictiveInsights{
		LandslideProbability:       85,
		SeismicTrend:               domain.TrendStable,
		ConstructionTimelineMonths: 35,
		TerrainComplexity:          domain.RiskHigh,
		WeatherWindows:             "Limited (winter)",
		FoundationDepthMeters:      23,
	}, got)
}

func TestPredict_Lowland(t *testing.T) {
	got := analysis.Predict(domain.Coordinate{Lat: 48.85, Lng: 2.35}, lowlandFactors())

	assert.Equal(t, 5, got.LandslideProbability)
	assert.Equal(t, domain.TrendDecreasing, got.SeismicTrend)
	assert.Equal(t, 12, got.ConstructionTimelineMonths)
	assert.Equal(t, domain.RiskLow, got.TerrainComplexity)
	assert.Equal(t, "Good", got.WeatherWindows)
	assert.Equal(t, 5, got.FoundationDepthMeters)
}

func TestSeismicTrendFor_ZoneThresholds(t *testing.T) {
	himalaya := domain.Coordinate{Lat: 30, Lng: 80}
	plain := domain.Coordinate{Lat: 51.5, Lng: -0.12}

	tests := []struct {
		name     string
		point    domain.Coordinate
		recent   int
		expected domain.SeismicTrend
	}{
		{"zone increasing", himalaya, 16, domain.TrendIncreasing},
		{"zone stable", himalaya, 15, domain.TrendStable},
		{"zone decreasing", himalaya, 8, domain.TrendDecreasing},
		{"plain increasing", plain, 11, domain.TrendIncreasing},
		{"plain stable", plain, 6, domain.TrendStable},
		{"plain decreasing", plain, 5, domain.TrendDecreasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.SeismicTrendFor(tt.point, domain.EarthquakeSummary{Recent: tt.recent})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWeatherWindows(t *testing.T) {
	assert.Equal(t, "Limited (monsoon)", analysis.WeatherWindows(10.85))
	assert.Equal(t, "Seasonal", analysis.WeatherWindows(26.2))
	assert.Equal(t, "Limited (winter)", analysis.WeatherWindows(30.7))
	assert.Equal(t, "Good", analysis.WeatherWindows(18))
	assert.Equal(t, "Good", analysis.WeatherWindows(-33.9))
}

func TestLandslideProbability_Bounds(t *testing.T) {
	forEachFactors(func(f domain.SiteFactors) {
		p := analysis.LandslideProbability(f)
		assert.GreaterOrEqual(t, p, 5)
		assert.LessOrEqual(t, p, 95)
	})
}
