package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Dehradun -> Guwahati, около 1400 км
	d := HaversineDistance(30.3165, 78.0322, 26.1445, 91.7362)
	assert.InDelta(t, 1420, d, 40)
	assert.Zero(t, HaversineDistance(10, 10, 10, 10))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
	assert.False(t, ValidateCoordinates(math.NaN(), 0))
}
