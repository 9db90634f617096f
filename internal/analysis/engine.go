package analysis

import (
	"time"

	"github.com/bridge-site-analyzer/internal/domain"
)

// Report - все производные оценки для одного набора факторов
type Report struct {
	Suggestions   []domain.SuitabilityResult
	CostEstimates []domain.CostEstimate
	Overview      []domain.SuitabilityResult
	Insights      domain.PredictiveInsights
	CrossSection  domain.CrossSection
}

// Engine связывает классификаторы и политики оценки
type Engine struct {
	Advisory  SuitabilityScorer
	Overview  SuitabilityScorer
	CostModel CostModelScorer
}

// NewEngine создаёт движок со стандартными политиками
func NewEngine() *Engine {
	return &Engine{
		Advisory: AdvisoryScorer{},
		Overview: OverviewScorer{},
	}
}

// Derive выводит факторы площадки из координаты и сырых событий
func (e *Engine) Derive(c domain.Coordinate, events []domain.SeismicEvent, now time.Time) domain.SiteFactors {
	eq := SummarizeEarthquakes(events, now)
	return e.DeriveWithSummary(c, eq)
}

// DeriveWithSummary выводит рельеф и геологию при уже готовой сводке
func (e *Engine) DeriveWithSummary(c domain.Coordinate, eq domain.EarthquakeSummary) domain.SiteFactors {
	return domain.SiteFactors{
		Earthquakes: eq,
		Terrain:     ClassifyTerrain(c),
		Geology:     EstimateGeology(c, eq),
	}
}

// Evaluate прогоняет все политики по факторам площадки
func (e *Engine) Evaluate(c domain.Coordinate, f domain.SiteFactors) Report {
	return Report{
		Suggestions:   e.Advisory.Score(f),
		CostEstimates: e.CostModel.Estimate(f),
		Overview:      e.Overview.Score(f),
		Insights:      Predict(c, f),
		CrossSection:  BuildCrossSection(f.Terrain, f.Geology),
	}
}
