package analysis_test

import "github.com/bridge-site-analyzer/internal/domain"

// himalayaFactors - факторы справочной площадки "Himalayas, Uttarakhand"
func himalayaFactors() domain.SiteFactors {
	return domain.SiteFactors{
		Earthquakes: domain.EarthquakeSummary{
			Total: 45, Recent: 12, MaxMagnitude: 6.8,
			Frequency: domain.FrequencyModerate, RiskLevel: domain.RiskHigh,
		},
		Terrain: domain.TerrainProfile{
			ElevationMeters: 3200, SlopeDegrees: 28.5,
			TerrainType: domain.TerrainMountainous, SoilType: domain.SoilRocky,
			LandslideRisk: domain.RiskVeryHigh,
		},
		Geology: domain.GeologicalFactors{
			SeismicActivity: domain.RiskHigh, FaultLines: domain.FaultActive,
			RockStability: domain.RockUnstable, ErosionRisk: domain.RiskHigh,
			WaterTable: domain.WaterTableVariable,
		},
	}
}

// lowlandFactors - ровная низменность без сейсмики
func lowlandFactors() domain.SiteFactors {
	return domain.SiteFactors{
		Earthquakes: domain.EarthquakeSummary{Frequency: domain.FrequencyNone, RiskLevel: domain.RiskLow},
		Terrain: domain.TerrainProfile{
			ElevationMeters: 150, SlopeDegrees: 3,
			TerrainType: domain.TerrainPlains, SoilType: domain.SoilLoamy,
			LandslideRisk: domain.RiskLow,
		},
		Geology: domain.GeologicalFactors{
			SeismicActivity: domain.RiskLow, FaultLines: domain.FaultDormant,
			RockStability: domain.RockStable, ErosionRisk: domain.RiskLow,
			WaterTable: domain.WaterTableLow,
		},
	}
}

var (
	allRisks       = []domain.RiskLevel{domain.RiskLow, domain.RiskModerate, domain.RiskHigh, domain.RiskVeryHigh}
	allTerrains    = []domain.TerrainType{domain.TerrainPlains, domain.TerrainHilly, domain.TerrainMountainous}
	allSoils       = []domain.SoilType{domain.SoilRocky, domain.SoilClay, domain.SoilSandy, domain.SoilLoamy, domain.SoilMixed}
	allStabilities = []domain.RockStability{domain.RockStable, domain.RockModeratelyStable, domain.RockUnstable}
	elevations     = []float64{0, 150, 300, 450, 600, 900, 1200, 1600, 2100, 4000}
	slopes         = []float64{0, 5, 12, 16, 22, 27, 33}
)

// forEachFactors перебирает сетку комбинаций факторов
func forEachFactors(fn func(domain.SiteFactors)) {
	for _, seismic := range allRisks {
		for _, landslide := range allRisks {
			for _, terrain := range allTerrains {
				for _, soil := range allSoils {
					for _, rock := range allStabilities {
						for _, elev := range elevations {
							for _, slope := range slopes {
								fn(domain.SiteFactors{
									Earthquakes: domain.EarthquakeSummary{RiskLevel: seismic, Frequency: domain.FrequencyLow},
									Terrain: domain.TerrainProfile{
										ElevationMeters: elev, SlopeDegrees: slope,
										TerrainType: terrain, SoilType: soil, LandslideRisk: landslide,
									},
									Geology: domain.GeologicalFactors{
										SeismicActivity: seismic, FaultLines: domain.FaultDormant,
										RockStability: rock, ErosionRisk: domain.RiskModerate,
										WaterTable: domain.WaterTableVariable,
									},
								})
							}
						}
					}
				}
			}
		}
	}
}
