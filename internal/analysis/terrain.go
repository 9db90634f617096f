package analysis

import (
	"math"

	"github.com/bridge-site-analyzer/internal/domain"
)

// terrainRegion - параметры рельефа одной зоны
type terrainRegion struct {
	Region        Region
	Match         Matcher
	ElevationBase float64
	ElevationSpan float64
	SlopeBase     float64
	SlopeSpan     float64
	TerrainBands  []band[domain.TerrainType]
	TerrainType   domain.TerrainType
}

// terrainRegions проверяются сверху вниз, первая совпавшая зона побеждает.
// Зоны пересекаются, поэтому порядок менять нельзя.
var terrainRegions = []terrainRegion{
	{
		Region: RegionHimalayan, Match: himalayanBox.Contains,
		ElevationBase: 2000, ElevationSpan: 3000, SlopeBase: 20, SlopeSpan: 20,
		TerrainType: domain.TerrainMountainous,
	},
	{
		Region: RegionWesternGhats, Match: westernGhatsBox.Contains,
		ElevationBase: 800, ElevationSpan: 2000, SlopeBase: 15, SlopeSpan: 20,
		TerrainType: domain.TerrainMountainous,
	},
	{
		Region: RegionNortheast, Match: northeastBox.Contains,
		ElevationBase: 500, ElevationSpan: 1500, SlopeBase: 12, SlopeSpan: 18,
		TerrainBands: []band[domain.TerrainType]{{0.4, domain.TerrainMountainous}},
		TerrainType:  domain.TerrainHilly,
	},
	{
		Region: RegionCentralIndia, Match: centralIndiaBox.Contains,
		ElevationBase: 300, ElevationSpan: 700, SlopeBase: 2, SlopeSpan: 8,
		TerrainBands: []band[domain.TerrainType]{{0.7, domain.TerrainHilly}},
		TerrainType:  domain.TerrainPlains,
	},
	{
		Region: RegionNorthernPlains, Match: inAny(northernPlainsBox, gangeticPlainsBox),
		ElevationBase: 100, ElevationSpan: 300, SlopeBase: 0, SlopeSpan: 5,
		TerrainType: domain.TerrainPlains,
	},
	{
		Region: RegionDeccanPlateau, Match: deccanPlateauBox.Contains,
		ElevationBase: 500, ElevationSpan: 800, SlopeBase: 3, SlopeSpan: 10,
		TerrainBands: []band[domain.TerrainType]{{0.6, domain.TerrainHilly}},
		TerrainType:  domain.TerrainPlains,
	},
	{
		Region: RegionRajasthan, Match: rajasthanBox.Contains,
		ElevationBase: 200, ElevationSpan: 400, SlopeBase: 0, SlopeSpan: 5,
		TerrainType: domain.TerrainPlains,
	},
}

var defaultTerrainRegion = terrainRegion{
	Region:        RegionDefault,
	ElevationBase: 100, ElevationSpan: 600, SlopeBase: 0, SlopeSpan: 10,
	TerrainBands: []band[domain.TerrainType]{{0.6, domain.TerrainHilly}},
	TerrainType:  domain.TerrainPlains,
}

// soilRegion - таблица грунтов, независимая от таблицы рельефа
type soilRegion struct {
	Region Region
	Match  Matcher
	Bands  []band[domain.SoilType]
	Soil   domain.SoilType
}

var soilRegions = []soilRegion{
	{RegionHimalayan, himalayanBox.Contains, []band[domain.SoilType]{{0.6, domain.SoilRocky}, {0.3, domain.SoilMixed}}, domain.SoilClay},
	{RegionWesternGhats, westernGhatsBox.Contains, []band[domain.SoilType]{{0.5, domain.SoilClay}, {0.25, domain.SoilLoamy}}, domain.SoilMixed},
	{RegionNortheast, northeastBox.Contains, []band[domain.SoilType]{{0.4, domain.SoilLoamy}, {0.2, domain.SoilMixed}}, domain.SoilClay},
	{RegionCentralIndia, centralIndiaBox.Contains, []band[domain.SoilType]{{0.6, domain.SoilClay}, {0.3, domain.SoilLoamy}}, domain.SoilMixed},
	{RegionNorthernPlains, inAny(northernPlainsBox, gangeticPlainsBox), []band[domain.SoilType]{{0.5, domain.SoilLoamy}}, domain.SoilMixed},
	{RegionDeccanPlateau, deccanPlateauBox.Contains, []band[domain.SoilType]{{0.5, domain.SoilClay}}, domain.SoilLoamy},
	{RegionCoastal, inAny(coastalBoxes...), []band[domain.SoilType]{{0.6, domain.SoilSandy}, {0.3, domain.SoilLoamy}}, domain.SoilMixed},
	{RegionRajasthan, rajasthanBox.Contains, []band[domain.SoilType]{{0.7, domain.SoilSandy}, {0.4, domain.SoilMixed}}, domain.SoilLoamy},
}

var defaultSoilRegion = soilRegion{
	Region: RegionDefault,
	Bands:  []band[domain.SoilType]{{0.5, domain.SoilLoamy}, {0.25, domain.SoilClay}},
	Soil:   domain.SoilMixed,
}

// TerrainRegionOf возвращает зону рельефа, в которую попадает точка
func TerrainRegionOf(c domain.Coordinate) Region {
	return matchTerrainRegion(c).Region
}

// SoilRegionOf возвращает зону грунтов, в которую попадает точка
func SoilRegionOf(c domain.Coordinate) Region {
	return matchSoilRegion(c).Region
}

func matchTerrainRegion(c domain.Coordinate) terrainRegion {
	for _, r := range terrainRegions {
		if r.Match(c) {
			return r
		}
	}
	return defaultTerrainRegion
}

func matchSoilRegion(c domain.Coordinate) soilRegion {
	for _, r := range soilRegions {
		if r.Match(c) {
			return r
		}
	}
	return defaultSoilRegion
}

// ClassifyTerrain выводит профиль рельефа из координаты. Функция тотальна
// и детерминирована: одна и та же точка всегда даёт один и тот же профиль.
func ClassifyTerrain(c domain.Coordinate) domain.TerrainProfile {
	f := drawFractions(c)
	region := matchTerrainRegion(c)
	soil := matchSoilRegion(c)

	elevation := math.Round(region.ElevationBase + f.elevation*region.ElevationSpan)
	slope := math.Round((region.SlopeBase+f.slope*region.SlopeSpan)*10) / 10

	// риск берётся от округлённых значений, чтобы совпадать с тем, что видит клиент

	return domain.TerrainProfile{
		ElevationMeters: elevation,
		SlopeDegrees:    slope,
		TerrainType:     pickBand(f.terrain, region.TerrainBands, region.TerrainType),
		SoilType:        pickBand(f.soil, soil.Bands, soil.Soil),
		LandslideRisk:   LandslideRisk(elevation, slope),
	}
}

// LandslideRisk - диапазон оползневого риска по высоте и уклону.
// Не убывает ни по одному из аргументов.
func LandslideRisk(elevation, slope float64) domain.RiskLevel {
	switch {
	case elevation > 1000 && slope > 25:
		return domain.RiskVeryHigh
	case elevation > 500 && slope > 20:
		return domain.RiskHigh
	case elevation > 300 && slope > 15:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
