package domain

// RiskLevel - диапазон риска (сейсмика, оползни, эрозия)
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// IsHigh возвращает true для High и Very High
func (r RiskLevel) IsHigh() bool {
	return r == RiskHigh || r == RiskVeryHigh
}

func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh, RiskVeryHigh:
		return true
	}
	return false
}

// Frequency - частота недавних землетрясений
type Frequency string

const (
	FrequencyNone     Frequency = "None"
	FrequencyLow      Frequency = "Low"
	FrequencyModerate Frequency = "Moderate"
	FrequencyHigh     Frequency = "High"
	FrequencyVeryHigh Frequency = "Very High"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyNone, FrequencyLow, FrequencyModerate, FrequencyHigh, FrequencyVeryHigh:
		return true
	}
	return false
}

type TerrainType string

const (
	TerrainPlains      TerrainType = "Plains"
	TerrainHilly       TerrainType = "Hilly"
	TerrainMountainous TerrainType = "Mountainous"
)

func (t TerrainType) IsValid() bool {
	switch t {
	case TerrainPlains, TerrainHilly, TerrainMountainous:
		return true
	}
	return false
}

type SoilType string

const (
	SoilRocky SoilType = "Rocky"
	SoilClay  SoilType = "Clay"
	SoilSandy SoilType = "Sandy"
	SoilLoamy SoilType = "Loamy"
	SoilMixed SoilType = "Mixed"
)

func (s SoilType) IsValid() bool {
	switch s {
	case SoilRocky, SoilClay, SoilSandy, SoilLoamy, SoilMixed:
		return true
	}
	return false
}

// FaultActivity - активность разломов
type FaultActivity string

const (
	FaultDormant          FaultActivity = "Dormant"
	FaultModeratelyActive FaultActivity = "Moderately Active"
	FaultActive           FaultActivity = "Active"
	FaultVeryActive       FaultActivity = "Very Active"
)

func (f FaultActivity) IsValid() bool {
	switch f {
	case FaultDormant, FaultModeratelyActive, FaultActive, FaultVeryActive:
		return true
	}
	return false
}

type RockStability string

const (
	RockStable           RockStability = "Stable"
	RockModeratelyStable RockStability = "Moderately Stable"
	RockUnstable         RockStability = "Unstable"
)

func (r RockStability) IsValid() bool {
	switch r {
	case RockStable, RockModeratelyStable, RockUnstable:
		return true
	}
	return false
}

type WaterTable string

const (
	WaterTableLow      WaterTable = "Low"
	WaterTableVariable WaterTable = "Variable"
	WaterTableHigh     WaterTable = "High"
)

func (w WaterTable) IsValid() bool {
	switch w {
	case WaterTableLow, WaterTableVariable, WaterTableHigh:
		return true
	}
	return false
}

// SeismicEvent - сырое событие из сейсмического каталога
type SeismicEvent struct {
	ID              string   `json:"id,omitempty"`
	TimestampMillis int64    `json:"timestamp_ms"`
	Magnitude       *float64 `json:"magnitude,omitempty"`
	Place           string   `json:"place,omitempty"`
}

// SeismicQuery - параметры запроса к сейсмическому источнику
type SeismicQuery struct {
	Point        Coordinate
	RadiusKm     float64
	MinMagnitude float64
	MaxResults   int
}

// EarthquakeSummary - агрегированная сейсмическая статистика точки
type EarthquakeSummary struct {
	Total        int       `json:"total" yaml:"total" db:"eq_total"`
	Recent       int       `json:"recent" yaml:"recent" db:"eq_recent"`
	MaxMagnitude float64   `json:"max_magnitude" yaml:"max_magnitude" db:"eq_max_magnitude"`
	Frequency    Frequency `json:"frequency" yaml:"frequency" db:"eq_frequency"`
	RiskLevel    RiskLevel `json:"risk_level" yaml:"risk_level" db:"eq_risk_level"`
}

// DefaultEarthquakeSummary - консервативная сводка при недоступности источника
func DefaultEarthquakeSummary() EarthquakeSummary {
	return EarthquakeSummary{
		Frequency: FrequencyLow,
		RiskLevel: RiskLow,
	}
}

// TerrainProfile - рельеф и грунт точки
type TerrainProfile struct {
	ElevationMeters float64     `json:"elevation_m" yaml:"elevation_m" db:"elevation_m"`
	SlopeDegrees    float64     `json:"slope_deg" yaml:"slope_deg" db:"slope_deg"`
	TerrainType     TerrainType `json:"terrain_type" yaml:"terrain_type" db:"terrain_type"`
	SoilType        SoilType    `json:"soil_type" yaml:"soil_type" db:"soil_type"`
	LandslideRisk   RiskLevel   `json:"landslide_risk" yaml:"landslide_risk" db:"landslide_risk"`
}

// GeologicalFactors - геологические факторы площадки
type GeologicalFactors struct {
	SeismicActivity RiskLevel     `json:"seismic_activity" yaml:"seismic_activity" db:"seismic_activity"`
	FaultLines      FaultActivity `json:"fault_lines" yaml:"fault_lines" db:"fault_lines"`
	RockStability   RockStability `json:"rock_stability" yaml:"rock_stability" db:"rock_stability"`
	ErosionRisk     RiskLevel     `json:"erosion_risk" yaml:"erosion_risk" db:"erosion_risk"`
	WaterTable      WaterTable    `json:"water_table" yaml:"water_table" db:"water_table"`
}

// SiteFactors - всё, что нужно скорерам мостов
type SiteFactors struct {
	Earthquakes EarthquakeSummary `json:"earthquakes"`
	Terrain     TerrainProfile    `json:"terrain"`
	Geology     GeologicalFactors `json:"geology"`
}
