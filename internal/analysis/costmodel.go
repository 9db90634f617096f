package analysis

import (
	"math"
	"sort"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// CostModelScorer - политика стоимости и жизненного цикла. Использует собственные
// базовые оценки пригодности, независимые от AdvisoryScorer.
type CostModelScorer struct{}

// costProfile - параметры конструкции в модели стоимости (суммы в INR)
type costProfile struct {
	Archetype       domain.Archetype
	Name            string
	StructuralType  string
	BaseCost        int64
	MaintenanceRate string
	BaseMonths      float64
	MonthsPerFactor float64
	Lifespan        func(f domain.SiteFactors, seismicMultiplier float64) int
	SubFactors      domain.SubFactors
	Benefits        []string
}

var costProfiles = []costProfile{
	{
		Archetype:       domain.ArchetypeSuspension,
		Name:            "Optimized Suspension Bridge",
		StructuralType:  "Advanced Suspension",
		BaseCost:        1_245_000_000,
		MaintenanceRate: "0.02",
		BaseMonths:      18,
		MonthsPerFactor: 6,
		Lifespan: func(f domain.SiteFactors, seismicMultiplier float64) int {
			years := 80
			if f.Terrain.ElevationMeters > 1000 {
				years += 10
			}
			if seismicMultiplier > 1.2 {
				years -= 5
			}
			return years
		},
		SubFactors: domain.SubFactors{Seismic: 85, Terrain: 90, Geological: 75, Economic: 70},
		Benefits: []string{
			"Excellent for high elevation crossings",
			"Minimal ground disturbance",
			"Long span capability reduces pier count",
			"Flexible design handles seismic activity well",
			"Low maintenance requirements",
		},
	},
	{
		Archetype:       domain.ArchetypeCableStayed,
		Name:            "Modern Cable-Stayed Bridge",
		StructuralType:  "Cable-Stayed",
		BaseCost:        996_000_000,
		MaintenanceRate: "0.025",
		BaseMonths:      15,
		MonthsPerFactor: 5,
		Lifespan: func(_ domain.SiteFactors, seismicMultiplier float64) int {
			if seismicMultiplier < 1.1 {
				return 85
			}
			return 75
		},
		SubFactors: domain.SubFactors{Seismic: 90, Terrain: 80, Geological: 80, Economic: 75},
		Benefits: []string{
			"Modern design with excellent seismic resistance",
			"Good balance of cost and performance",
			"Redundant cable system for safety",
			"Aesthetic appeal",
			"Moderate maintenance requirements",
		},
	},
	{
		Archetype:       domain.ArchetypeArch,
		Name:            "Reinforced Arch Bridge",
		StructuralType:  "Concrete/Steel Arch",
		BaseCost:        664_000_000,
		MaintenanceRate: "0.015",
		BaseMonths:      12,
		MonthsPerFactor: 4,
		Lifespan: func(f domain.SiteFactors, _ float64) int {
			if f.Geology.RockStability == domain.RockStable {
				return 120
			}
			return 100
		},
		SubFactors: domain.SubFactors{Seismic: 70, Terrain: 75, Geological: 90, Economic: 85},
		Benefits: []string{
			"Longest lifespan with proper foundation",
			"Excellent load distribution",
			"Low maintenance costs",
			"Durable construction",
			"Good for stable rock formations",
		},
	},
	{
		Archetype:       domain.ArchetypeBeam,
		Name:            "Reinforced Beam Bridge",
		StructuralType:  "Pre-stressed Concrete Beam",
		BaseCost:        415_000_000,
		MaintenanceRate: "0.03",
		BaseMonths:      8,
		MonthsPerFactor: 3,
		Lifespan: func(f domain.SiteFactors, _ float64) int {
			if f.Terrain.ElevationMeters > 1000 {
				return 50
			}
			return 60
		},
		SubFactors: domain.SubFactors{Seismic: 60, Terrain: 65, Geological: 70, Economic: 95},
		Benefits: []string{
			"Most economical option",
			"Quick construction time",
			"Simple maintenance",
			"Proven design",
			"Good for moderate terrain",
		},
	},
	{
		Archetype:       domain.ArchetypeTruss,
		Name:            "Steel Truss Bridge",
		StructuralType:  "Modern Truss",
		BaseCost:        581_000_000,
		MaintenanceRate: "0.025",
		BaseMonths:      10,
		MonthsPerFactor: 4,
		Lifespan:        func(domain.SiteFactors, float64) int { return 70 },
		SubFactors:      domain.SubFactors{Seismic: 65, Terrain: 75, Geological: 75, Economic: 80},
		Benefits: []string{
			"High strength-to-weight ratio",
			"Good for medium spans",
			"Durable steel construction",
			"Moderate cost",
			"Suitable for varied terrain",
		},
	},
}

// Multipliers - ступенчатые множители сложности площадки
type Multipliers struct {
	Seismic   float64 `json:"seismic"`
	Elevation float64 `json:"elevation"`
	Slope     float64 `json:"slope"`
}

// Complexity - произведение всех множителей
func (m Multipliers) Complexity() float64 {
	return m.Seismic * m.Elevation * m.Slope
}

// MultipliersFor вычисляет множители сложности
func (CostModelScorer) MultipliersFor(f domain.SiteFactors) Multipliers {
	m := Multipliers{Seismic: 1.0, Elevation: 1.0, Slope: 1.0}

	switch {
	case f.Earthquakes.RiskLevel.IsHigh():
		m.Seismic = 1.3
	case f.Earthquakes.RiskLevel == domain.RiskModerate:
		m.Seismic = 1.1
	}

	switch {
	case f.Terrain.ElevationMeters > 2000:
		m.Elevation = 1.4
	case f.Terrain.ElevationMeters > 1000:
		m.Elevation = 1.2
	}

	switch {
	case f.Terrain.SlopeDegrees > 30:
		m.Slope = 1.3
	case f.Terrain.SlopeDegrees > 20:
		m.Slope = 1.15
	}

	return m
}

// Estimate возвращает оценки стоимости по убыванию собственной пригодности модели
func (m CostModelScorer) Estimate(f domain.SiteFactors) []domain.CostEstimate {
	mult := m.MultipliersFor(f)
	complexity := mult.Complexity()
	complexityDec := decimal.NewFromFloat(complexity)

	estimates := make([]domain.CostEstimate, 0, len(costProfiles))
	for _, p := range costProfiles {
		lifespan := p.Lifespan(f, mult.Seismic)
		years := decimal.NewFromInt(int64(lifespan))

		cost := decimal.NewFromInt(p.BaseCost).Mul(complexityDec)
		maintenance := cost.Mul(decimal.RequireFromString(p.MaintenanceRate)).Mul(years)

		estimates = append(estimates, domain.CostEstimate{
			Archetype:              p.Archetype,
			Name:                   p.Name,
			StructuralType:         p.StructuralType,
			SuitabilityScore:       m.Suitability(p.Archetype, f),
			EstimatedCost:          cost.Round(2),
			LifespanYears:          lifespan,
			MaintenanceCostTotal:   maintenance.Round(2),
			AnnualMaintenance:      maintenance.Div(years).Round(2),
			ConstructionTimeMonths: int(math.Round(p.BaseMonths + complexity*p.MonthsPerFactor)),
			RiskScore:              m.RiskScore(p.Archetype, f),
			SubFactors:             p.SubFactors,
			Benefits:               append([]string(nil), p.Benefits...),
		})
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].SuitabilityScore > estimates[j].SuitabilityScore
	})
	return estimates
}

// Suitability - упрощённая пригодность модели стоимости, диапазон [40, 95]
func (CostModelScorer) Suitability(a domain.Archetype, f domain.SiteFactors) int {
	score := 50
	t := f.Terrain

	switch a {
	case domain.ArchetypeSuspension:
		if t.ElevationMeters > 1000 {
			score += 20
		}
		if t.SlopeDegrees > 20 {
			score += 15
		}
		if f.Earthquakes.RiskLevel.IsHigh() {
			score += 10
		}
	case domain.ArchetypeCableStayed:
		if f.Earthquakes.RiskLevel.IsHigh() {
			score += 20
		}
		if t.ElevationMeters > 800 {
			score += 15
		}
	case domain.ArchetypeArch:
		if f.Geology.RockStability == domain.RockStable {
			score += 25
		}
		if t.TerrainType == domain.TerrainMountainous {
			score += 15
		}
	case domain.ArchetypeBeam:
		if t.ElevationMeters < 500 {
			score += 20
		}
		if t.SlopeDegrees < 15 {
			score += 15
		}
	case domain.ArchetypeTruss:
		if t.ElevationMeters < 1000 {
			score += 15
		}
		if t.SlopeDegrees < 20 {
			score += 10
		}
	}

	return scoreBand{Min: 40, Max: 95}.clamp(score)
}

// RiskScore - интегральный риск конструкции на площадке, диапазон [10, 100]
func (CostModelScorer) RiskScore(a domain.Archetype, f domain.SiteFactors) int {
	risk := 50
	t := f.Terrain

	switch {
	case t.ElevationMeters > 2000:
		risk += 15
	case t.ElevationMeters > 1000:
		risk += 10
	}

	switch {
	case t.SlopeDegrees > 30:
		risk += 15
	case t.SlopeDegrees > 20:
		risk += 10
	}

	switch f.Earthquakes.RiskLevel {
	case domain.RiskVeryHigh:
		risk += 20
	case domain.RiskHigh:
		risk += 15
	case domain.RiskModerate:
		risk += 5
	}

	if f.Geology.RockStability == domain.RockUnstable {
		risk += 15
	}
	if f.Geology.ErosionRisk == domain.RiskHigh {
		risk += 10
	}

	switch a {
	case domain.ArchetypeSuspension, domain.ArchetypeCableStayed:
		risk -= 10
	case domain.ArchetypeBeam:
		risk += 5
	}

	return scoreBand{Min: 10, Max: 100}.clamp(risk)
}
