package analysis

import "github.com/bridge-site-analyzer/internal/domain"

// EstimateGeology выводит геологические факторы из координаты и сводки землетрясений.
// Северо-восток проверяется раньше Гималаев: зоны пересекаются (например 26.2, 93.0),
// и для пересечения действуют более строгие северо-восточные пороги.
func EstimateGeology(c domain.Coordinate, eq domain.EarthquakeSummary) domain.GeologicalFactors {
	f := drawFractions(c)
	g := domain.GeologicalFactors{SeismicActivity: eq.RiskLevel}

	switch {
	case northeastBox.Contains(c):
		g.FaultLines = domain.FaultActive
		if eq.Recent > 15 {
			g.FaultLines = domain.FaultVeryActive
		}
		g.RockStability = domain.RockModeratelyStable
		if eq.MaxMagnitude > 7 {
			g.RockStability = domain.RockUnstable
		}
		g.ErosionRisk = domain.RiskHigh
		g.WaterTable = pickBand(f.elevation, []band[domain.WaterTable]{{0.6, domain.WaterTableHigh}}, domain.WaterTableVariable)

	case himalayanBox.Contains(c):
		g.FaultLines = domain.FaultModeratelyActive
		if eq.Recent > 8 {
			g.FaultLines = domain.FaultActive
		}
		switch {
		case eq.MaxMagnitude > 6.5:
			g.RockStability = domain.RockUnstable
		case f.elevation > 0.5:
			g.RockStability = domain.RockModeratelyStable
		default:
			g.RockStability = domain.RockStable
		}
		g.ErosionRisk = pickBand(f.erosion, []band[domain.RiskLevel]{{0.6, domain.RiskHigh}, {0.3, domain.RiskModerate}}, domain.RiskLow)
		g.WaterTable = pickBand(f.elevation, []band[domain.WaterTable]{{0.5, domain.WaterTableVariable}}, domain.WaterTableLow)

	default:
		switch {
		case eq.Recent > 10:
			g.FaultLines = domain.FaultActive
		case eq.Recent > 5:
			g.FaultLines = domain.FaultModeratelyActive
		default:
			g.FaultLines = domain.FaultDormant
		}
		switch {
		case eq.MaxMagnitude > 6:
			g.RockStability = domain.RockUnstable
		case eq.MaxMagnitude > 4.5:
			g.RockStability = domain.RockModeratelyStable
		default:
			g.RockStability = domain.RockStable
		}
		g.ErosionRisk = pickBand(f.erosion, []band[domain.RiskLevel]{{0.5, domain.RiskModerate}}, domain.RiskLow)
		g.WaterTable = pickBand(f.elevation, []band[domain.WaterTable]{
			{0.5, domain.WaterTableVariable},
			{0.25, domain.WaterTableHigh},
		}, domain.WaterTableLow)
	}

	return g
}
