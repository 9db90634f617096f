package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSiteAnalyzeEvent_HasCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		event    SiteAnalyzeEvent
		expected bool
	}{
		{
			name: "both coordinates",
			event: SiteAnalyzeEvent{
				RequestID: uuid.New(),
				Latitude:  floatPtr(30.7333),
				Longitude: floatPtr(79.0667),
			},
			expected: true,
		},
		{
			name: "latitude only",
			event: SiteAnalyzeEvent{
				RequestID: uuid.New(),
				Latitude:  floatPtr(30.7333),
			},
			expected: false,
		},
		{
			name: "longitude only",
			event: SiteAnalyzeEvent{
				RequestID: uuid.New(),
				Longitude: floatPtr(79.0667),
			},
			expected: false,
		},
		{
			name:     "zero coordinates are still coordinates",
			event:    SiteAnalyzeEvent{Latitude: floatPtr(0), Longitude: floatPtr(0)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasCoordinates())
		})
	}
}

func TestSiteAnalyzeEvent_HasPlace(t *testing.T) {
	tests := []struct {
		name     string
		event    SiteAnalyzeEvent
		expected bool
	}{
		{"place set", SiteAnalyzeEvent{Place: strPtr("Guwahati")}, true},
		{"empty place", SiteAnalyzeEvent{Place: strPtr("")}, false},
		{"nil place", SiteAnalyzeEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasPlace())
		})
	}
}

func TestRiskLevel_IsHigh(t *testing.T) {
	assert.False(t, RiskLow.IsHigh())
	assert.False(t, RiskModerate.IsHigh())
	assert.True(t, RiskHigh.IsHigh())
	assert.True(t, RiskVeryHigh.IsHigh())
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 90, Lng: 180}.IsValid())
	assert.True(t, Coordinate{Lat: -90, Lng: -180}.IsValid())
	assert.False(t, Coordinate{Lat: 90.1, Lng: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lng: -180.5}.IsValid())
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
