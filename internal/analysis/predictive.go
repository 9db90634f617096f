package analysis

import (
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/golang/geo/r1"
)

// Predict выводит прогнозные показатели площадки. Все значения получаются
// пороговыми правилами, обучаемой модели здесь нет.
func Predict(c domain.Coordinate, f domain.SiteFactors) domain.PredictiveInsights {
	return domain.PredictiveInsights{
		LandslideProbability:       LandslideProbability(f),
		SeismicTrend:               SeismicTrendFor(c, f.Earthquakes),
		ConstructionTimelineMonths: ConstructionTimeline(f),
		TerrainComplexity:          TerrainComplexity(f.Terrain),
		WeatherWindows:             WeatherWindows(c.Lat),
		FoundationDepthMeters:      FoundationDepth(f),
	}
}

// LandslideProbability - вероятность оползня в процентах, [5, 95]
func LandslideProbability(f domain.SiteFactors) int {
	t := f.Terrain
	p := 0

	switch {
	case t.ElevationMeters > 2000 && t.SlopeDegrees > 30:
		p += 50
	case t.ElevationMeters > 1000 && t.SlopeDegrees > 25:
		p += 35
	case t.ElevationMeters > 500 && t.SlopeDegrees > 20:
		p += 20
	case t.ElevationMeters > 300 && t.SlopeDegrees > 15:
		p += 10
	}

	switch t.LandslideRisk {
	case domain.RiskVeryHigh:
		p += 30
	case domain.RiskHigh:
		p += 20
	case domain.RiskModerate:
		p += 10
	}

	switch f.Geology.ErosionRisk {
	case domain.RiskHigh:
		p += 15
	case domain.RiskModerate:
		p += 8
	}

	switch f.Earthquakes.RiskLevel {
	case domain.RiskVeryHigh:
		p += 10
	case domain.RiskHigh:
		p += 5
	}

	return scoreBand{Min: 5, Max: 95}.clamp(p)
}

// SeismicTrendFor - тенденция по числу недавних событий; в сейсмоопасных зонах пороги выше
func SeismicTrendFor(c domain.Coordinate, eq domain.EarthquakeSummary) domain.SeismicTrend {
	increasing, stable := 10, 5
	if IsHighSeismicZone(c) {
		increasing, stable = 15, 8
	}

	switch {
	case eq.Recent > increasing:
		return domain.TrendIncreasing
	case eq.Recent > stable:
		return domain.TrendStable
	default:
		return domain.TrendDecreasing
	}
}

// ConstructionTimeline - ориентировочный срок строительства в месяцах
func ConstructionTimeline(f domain.SiteFactors) int {
	t, g := f.Terrain, f.Geology
	months := 12

	switch {
	case t.ElevationMeters > 2000:
		months += 8
	case t.ElevationMeters > 1000:
		months += 4
	case t.ElevationMeters > 500:
		months += 2
	}

	switch {
	case t.SlopeDegrees > 30:
		months += 6
	case t.SlopeDegrees > 20:
		months += 3
	case t.SlopeDegrees > 15:
		months += 2
	}

	switch t.TerrainType {
	case domain.TerrainMountainous:
		months += 6
	case domain.TerrainHilly:
		months += 3
	}

	if g.RockStability == domain.RockUnstable {
		months += 4
	}
	if g.WaterTable == domain.WaterTableHigh {
		months += 2
	}

	switch g.SeismicActivity {
	case domain.RiskVeryHigh:
		months += 3
	case domain.RiskHigh:
		months += 2
	}

	return months
}

// TerrainComplexity - сложность рельефа для строительства
func TerrainComplexity(t domain.TerrainProfile) domain.RiskLevel {
	switch {
	case t.ElevationMeters > 2000 && t.SlopeDegrees > 30:
		return domain.RiskVeryHigh
	case t.ElevationMeters > 1000 && t.SlopeDegrees > 20:
		return domain.RiskHigh
	case t.ElevationMeters > 500 && t.SlopeDegrees > 15:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

var weatherBands = []struct {
	lat    r1.Interval
	window string
}{
	{r1.Interval{Lo: 8, Hi: 15}, "Limited (monsoon)"},
	{r1.Interval{Lo: 22, Hi: 28}, "Seasonal"},
	{r1.Interval{Lo: 25, Hi: 35}, "Limited (winter)"},
}

// WeatherWindows - строительные окна по широте (муссоны, зима)
func WeatherWindows(lat float64) string {
	for _, b := range weatherBands {
		if b.lat.InteriorContains(lat) {
			return b.window
		}
	}
	return "Good"
}

// FoundationDepth - рекомендуемая глубина фундамента в метрах
func FoundationDepth(f domain.SiteFactors) int {
	depth := 5

	switch {
	case f.Terrain.ElevationMeters > 2000:
		depth += 10
	case f.Terrain.ElevationMeters > 1000:
		depth += 5
	}

	switch f.Geology.RockStability {
	case domain.RockUnstable:
		depth += 8
	case domain.RockModeratelyStable:
		depth += 4
	}

	if f.Geology.WaterTable == domain.WaterTableHigh {
		depth += 3
	}

	return depth
}
