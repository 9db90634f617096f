package analysis

import (
	"sort"

	"github.com/bridge-site-analyzer/internal/domain"
)

// SuitabilityScorer - политика ранжирования конструкций для площадки
type SuitabilityScorer interface {
	Score(f domain.SiteFactors) []domain.SuitabilityResult
}

// scoreBand - допустимый диапазон итоговой оценки
type scoreBand struct {
	Min int
	Max int
}

func (b scoreBand) clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// archetypeProfile - статическое описание конструкции в рамках одной политики
type archetypeProfile struct {
	Archetype      domain.Archetype
	Name           string
	StructuralType string
	Base           int
	Band           scoreBand
	Reasons        []string
	Pros           []string
	Cons           []string
}

// scoreCard накапливает баллы и пояснения за один проход по правилам
type scoreCard struct {
	score   int
	reasons []string
	pros    []string
	cons    []string
}

func (s *scoreCard) add(delta int) *scoreCard {
	s.score += delta
	return s
}

func (s *scoreCard) reason(r ...string) *scoreCard {
	s.reasons = append(s.reasons, r...)
	return s
}

func (s *scoreCard) pro(p ...string) *scoreCard {
	s.pros = append(s.pros, p...)
	return s
}

func (s *scoreCard) con(c ...string) *scoreCard {
	s.cons = append(s.cons, c...)
	return s
}

// result сворачивает карточку в итог: оценка ограничивается диапазоном,
// пустые списки заменяются описанием из профиля.
func (s *scoreCard) result(p archetypeProfile) domain.SuitabilityResult {
	return domain.SuitabilityResult{
		Archetype:        p.Archetype,
		Name:             p.Name,
		StructuralType:   p.StructuralType,
		SuitabilityScore: p.Band.clamp(s.score),
		Reasons:          orDefault(s.reasons, p.Reasons),
		Pros:             orDefault(s.pros, p.Pros),
		Cons:             orDefault(s.cons, p.Cons),
	}
}

func orDefault(items, fallback []string) []string {
	if len(items) > 0 {
		return items
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}

// rankSuitability сортирует по убыванию оценки, равные сохраняют порядок каталога
func rankSuitability(results []domain.SuitabilityResult) []domain.SuitabilityResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SuitabilityScore > results[j].SuitabilityScore
	})
	return results
}

// scoringRule - профиль конструкции и правила начисления баллов
type scoringRule struct {
	profile archetypeProfile
	apply   func(s siteSignals, card *scoreCard)
}

// scoreAll прогоняет правила по порядку каталога и ранжирует результат
func scoreAll(rules []scoringRule, f domain.SiteFactors) []domain.SuitabilityResult {
	s := signalsOf(f)
	results := make([]domain.SuitabilityResult, 0, len(rules))
	for _, rule := range rules {
		card := &scoreCard{score: rule.profile.Base}
		rule.apply(s, card)
		results = append(results, card.result(rule.profile))
	}
	return rankSuitability(results)
}

// siteSignals - производные признаки, общие для всех правил
type siteSignals struct {
	domain.SiteFactors
	seismic       domain.RiskLevel
	landslide     domain.RiskLevel
	elevation     float64
	slope         float64
	highSeismic   bool
	highLandslide bool
}

func signalsOf(f domain.SiteFactors) siteSignals {
	return siteSignals{
		SiteFactors:   f,
		seismic:       f.Earthquakes.RiskLevel,
		landslide:     f.Terrain.LandslideRisk,
		elevation:     f.Terrain.ElevationMeters,
		slope:         f.Terrain.SlopeDegrees,
		highSeismic:   f.Earthquakes.RiskLevel.IsHigh(),
		highLandslide: f.Terrain.LandslideRisk.IsHigh(),
	}
}
