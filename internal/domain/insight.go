package domain

// SeismicTrend - прогноз сейсмической тенденции
type SeismicTrend string

const (
	TrendIncreasing SeismicTrend = "Increasing"
	TrendStable     SeismicTrend = "Stable"
	TrendDecreasing SeismicTrend = "Decreasing"
)

// PredictiveInsights - производные прогнозные показатели площадки
type PredictiveInsights struct {
	LandslideProbability       int          `json:"landslide_probability"`
	SeismicTrend               SeismicTrend `json:"seismic_trend"`
	ConstructionTimelineMonths int          `json:"construction_timeline_months"`
	TerrainComplexity          RiskLevel    `json:"terrain_complexity"`
	WeatherWindows             string       `json:"weather_windows"`
	FoundationDepthMeters      int          `json:"foundation_depth_m"`
}

// SoilLayer - слой геологического разреза
type SoilLayer struct {
	Name         string  `json:"name"`
	DepthMeters  float64 `json:"depth_m"`
	HeightMeters float64 `json:"height_m"`
	Color        string  `json:"color"`
	Description  string  `json:"description"`
}

// CrossSection - упрощённый геологический разрез под площадкой
type CrossSection struct {
	Layers                   []SoilLayer `json:"layers"`
	BedrockDepthMeters       float64     `json:"bedrock_depth_m"`
	WaterTableDepthMeters    float64     `json:"water_table_depth_m"`
	MinFoundationDepthMeters float64     `json:"min_foundation_depth_m"`
}
