package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSource - откуда взяты факторы площадки
type AnalysisSource string

const (
	SourceCatalog AnalysisSource = "catalog"
	SourceDerived AnalysisSource = "derived"
)

// SiteAnalysis - полный результат анализа площадки под мост
type SiteAnalysis struct {
	ID              uuid.UUID           `json:"id"`
	Point           Coordinate          `json:"point"`
	Source          AnalysisSource      `json:"source"`
	CatalogID       string              `json:"catalog_id,omitempty"`
	CatalogName     string              `json:"catalog_name,omitempty"`
	SeismicDegraded bool                `json:"seismic_degraded"`
	Earthquakes     EarthquakeSummary   `json:"earthquakes"`
	Terrain         TerrainProfile      `json:"terrain"`
	Geology         GeologicalFactors   `json:"geology"`
	Suggestions     []SuitabilityResult `json:"suggestions"`
	CostEstimates   []CostEstimate      `json:"cost_estimates"`
	Overview        []SuitabilityResult `json:"overview"`
	Insights        PredictiveInsights  `json:"insights"`
	CrossSection    CrossSection        `json:"cross_section"`
	AnalyzedAt      time.Time           `json:"analyzed_at"`
}

// Factors собирает входные данные для скореров
func (a *SiteAnalysis) Factors() SiteFactors {
	return SiteFactors{
		Earthquakes: a.Earthquakes,
		Terrain:     a.Terrain,
		Geology:     a.Geology,
	}
}

// TopArchetype возвращает лучшую рекомендацию или пустую строку
func (a *SiteAnalysis) TopArchetype() Archetype {
	if len(a.Suggestions) == 0 {
		return ""
	}
	return a.Suggestions[0].Archetype
}

// CatalogLocation - заранее рассчитанная площадка из справочника
type CatalogLocation struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Point       Coordinate        `json:"point" yaml:"point"`
	ImageURL    string            `json:"image_url,omitempty" yaml:"image_url"`
	Description string            `json:"description,omitempty" yaml:"description"`
	Terrain     TerrainProfile    `json:"terrain" yaml:"terrain"`
	Earthquakes EarthquakeSummary `json:"earthquakes" yaml:"earthquakes"`
	Geology     GeologicalFactors `json:"geology" yaml:"geology"`
}

// GeocodeResult - лучшее совпадение геокодера
type GeocodeResult struct {
	Point       Coordinate `json:"point"`
	DisplayName string     `json:"display_name"`
}
