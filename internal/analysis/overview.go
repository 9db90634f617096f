package analysis

import "github.com/bridge-site-analyzer/internal/domain"

// OverviewScorer - компактная политика для обзорной карточки площадки.
// Баллы крупнее и диапазоны уже, чем у AdvisoryScorer; числа намеренно не сведены.
type OverviewScorer struct{}

var overviewRules = []scoringRule{
	{
		profile: archetypeProfile{
			Archetype: domain.ArchetypeSuspension, Name: "Suspension Bridge", StructuralType: "Cable-Stayed Suspension",
			Base: 70, Band: scoreBand{Min: 0, Max: 95},
			Reasons: []string{"Suitable for long spans"},
			Pros:    []string{"Long span capability", "Aesthetic appeal", "Minimal piers"},
			Cons:    []string{"Higher cost", "Complex construction", "Wind sensitivity"},
		},
		apply: func(s siteSignals, c *scoreCard) {
			if s.elevation > 1000 && s.slope > 20 {
				c.add(15)
			}
			if s.highSeismic {
				c.add(10)
			}
			if s.highLandslide {
				c.add(5)
			}
			if s.elevation > 1000 {
				c.reason("Ideal for high elevation and steep terrain")
			}
		},
	},
	{
		profile: archetypeProfile{
			Archetype: domain.ArchetypeArch, Name: "Arch Bridge", StructuralType: "Concrete/Steel Arch",
			Base: 65, Band: scoreBand{Min: 50, Max: 95},
			Reasons: []string{"Strong and durable design"},
			Pros:    []string{"Excellent load distribution", "Aesthetic", "Long-lasting"},
			Cons:    []string{"Requires stable foundations", "Limited span length", "Complex formwork"},
		},
		apply: func(s siteSignals, c *scoreCard) {
			mountainous := s.Terrain.TerrainType == domain.TerrainMountainous
			if mountainous && s.Geology.RockStability == domain.RockStable {
				c.add(20)
			}
			if !s.highSeismic {
				c.add(10)
			}
			if s.elevation > 500 {
				c.add(5)
			}
			if mountainous {
				c.reason("Excellent for rocky, stable terrain")
			}
		},
	},
	{
		profile: archetypeProfile{
			Archetype: domain.ArchetypeCableStayed, Name: "Cable-Stayed Bridge", StructuralType: "Modern Cable-Stayed",
			Base: 75, Band: scoreBand{Min: 0, Max: 95},
			Reasons: []string{"Modern, efficient design"},
			Pros:    []string{"Good seismic resistance", "Efficient material use", "Modern aesthetics"},
			Cons:    []string{"Requires tall towers", "Cable maintenance", "Wind considerations"},
		},
		apply: func(s siteSignals, c *scoreCard) {
			if s.highSeismic {
				c.add(15).reason("Excellent seismic performance with redundancy")
			}
			if s.elevation > 800 {
				c.add(10)
			}
			if s.slope > 25 {
				c.add(5)
			}
			if s.highLandslide {
				c.add(5)
			}
		},
	},
	{
		profile: archetypeProfile{
			Archetype: domain.ArchetypeBeam, Name: "Beam Bridge", StructuralType: "Pre-stressed Concrete Beam",
			Base: 50, Band: scoreBand{Min: 40, Max: 90},
			Reasons: []string{"Simple and economical"},
			Pros:    []string{"Cost-effective", "Simple design", "Quick construction"},
			Cons:    []string{"Limited span length", "Less suitable for high-risk areas", "More piers needed"},
		},
		apply: func(s siteSignals, c *scoreCard) {
			if s.seismic == domain.RiskLow && s.landslide == domain.RiskLow {
				c.add(25)
			}
			if s.elevation < 500 && s.slope < 15 {
				c.add(15)
			}
			if s.highSeismic || s.highLandslide {
				c.add(-20)
			}
			if s.seismic == domain.RiskLow {
				c.reason("Cost-effective for low-risk areas")
			}
		},
	},
	{
		profile: archetypeProfile{
			Archetype: domain.ArchetypeTruss, Name: "Truss Bridge", StructuralType: "Steel Truss",
			Base: 60, Band: scoreBand{Min: 50, Max: 85},
			Reasons: []string{"Strong and efficient design"},
			Pros:    []string{"Strong structure", "Efficient material use", "Good load distribution"},
			Cons:    []string{"More complex construction", "Maintenance requirements", "Visual impact"},
		},
		apply: func(s siteSignals, c *scoreCard) {
			if s.elevation > 600 {
				c.add(10).reason("Good for elevated crossings")
			}
			if !s.highSeismic {
				c.add(10)
			}
			if s.Terrain.SoilType == domain.SoilRocky {
				c.add(5)
			}
		},
	},
}

// Score оценивает конструкции по компактным правилам
func (OverviewScorer) Score(f domain.SiteFactors) []domain.SuitabilityResult {
	return scoreAll(overviewRules, f)
}
