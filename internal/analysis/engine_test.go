package analysis_test

import (
	"testing"
	"time"

	"github.com/bridge-site-analyzer/internal/analysis"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_DeriveIsDeterministic(t *testing.T) {
	engine := analysis.NewEngine()
	p := domain.Coordinate{Lat: 26.2, Lng: 93.0}
	events := make([]domain.SeismicEvent, 20)
	for i := range events {
		events[i] = eventAt(time.Duration(i)*24*time.Hour, mag(4.8))
	}

	first := engine.Derive(p, events, referenceNow)
	second := engine.Derive(p, events, referenceNow)
	assert.Equal(t, first, second)

	assert.Equal(t, 20, first.Earthquakes.Recent)
	assert.Equal(t, domain.FrequencyHigh, first.Earthquakes.Frequency)
	assert.Equal(t, domain.RiskModerate, first.Earthquakes.RiskLevel)
	assert.Equal(t, domain.FaultVeryActive, first.Geology.FaultLines)
	assert.Equal(t, analysis.ClassifyTerrain(p), first.Terrain)
}

func TestEngine_DeriveWithDefaultSummary(t *testing.T) {
	engine := analysis.NewEngine()
	f := engine.DeriveWithSummary(domain.Coordinate{Lat: 51.5, Lng: -0.12}, domain.DefaultEarthquakeSummary())

	assert.Equal(t, domain.FrequencyLow, f.Earthquakes.Frequency)
	assert.Equal(t, domain.RiskLow, f.Geology.SeismicActivity)
	assert.Equal(t, domain.FaultDormant, f.Geology.FaultLines)
}

func TestEngine_Evaluate(t *testing.T) {
	engine := analysis.NewEngine()
	p := domain.Coordinate{Lat: 30.7333, Lng: 79.0667}
	f := himalayaFactors()

	report := engine.Evaluate(p, f)

	require.Len(t, report.Suggestions, 5)
	require.Len(t, report.CostEstimates, 5)
	require.Len(t, report.Overview, 5)
	assert.Equal(t, domain.ArchetypeSuspension, report.Suggestions[0].Archetype)
	assert.Equal(t, domain.ArchetypeSuspension, report.CostEstimates[0].Archetype)
	assert.Equal(t, 85, report.Insights.LandslideProbability)
	assert.Equal(t, 17.0, report.CrossSection.BedrockDepthMeters)
	assert.Equal(t, report, engine.Evaluate(p, f))
}
