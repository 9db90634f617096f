package analysis

import "github.com/bridge-site-analyzer/internal/domain"

// AdvisoryScorer - основная политика рекомендаций: аддитивные баллы
// с пояснениями, собранными за тот же проход.
type AdvisoryScorer struct{}

var advisoryRules = []scoringRule{
	{
		profile: archetypeProfile{
			Archetype:      domain.ArchetypeSuspension,
			Base:           50,
			Name:           "Suspension Bridge",
			StructuralType: "Cable-Stayed Suspension",
			Band:           scoreBand{Min: 40, Max: 95},
			Reasons:        []string{"Suitable for long spans and high elevations"},
			Pros:           []string{"Long span capability", "Aesthetic appeal", "Minimal piers"},
			Cons:           []string{"Higher cost", "Complex construction", "Wind sensitivity"},
		},
		apply: scoreSuspension,
	},
	{
		profile: archetypeProfile{
			Archetype:      domain.ArchetypeArch,
			Base:           45,
			Name:           "Arch Bridge",
			StructuralType: "Concrete/Steel Arch",
			Band:           scoreBand{Min: 35, Max: 95},
			Reasons:        []string{"Strong and durable design"},
			Pros:           []string{"Excellent load distribution", "Aesthetic", "Long-lasting"},
			Cons:           []string{"Requires stable foundations", "Limited span length", "Complex formwork"},
		},
		apply: scoreArch,
	},
	{
		profile: archetypeProfile{
			Archetype:      domain.ArchetypeCableStayed,
			Base:           60,
			Name:           "Cable-Stayed Bridge",
			StructuralType: "Modern Cable-Stayed",
			Band:           scoreBand{Min: 45, Max: 95},
			Reasons:        []string{"Modern, efficient design"},
			Pros:           []string{"Good seismic resistance", "Efficient material use", "Modern aesthetics"},
			Cons:           []string{"Requires tall towers", "Cable maintenance", "Wind considerations"},
		},
		apply: scoreCableStayed,
	},
	{
		profile: archetypeProfile{
			Archetype:      domain.ArchetypeBeam,
			Base:           40,
			Name:           "Beam Bridge",
			StructuralType: "Pre-stressed Concrete Beam",
			Band:           scoreBand{Min: 25, Max: 90},
			Reasons:        []string{"Simple and economical"},
			Pros:           []string{"Cost-effective", "Simple design", "Quick construction"},
			Cons:           []string{"Limited span length", "Less suitable for high-risk areas", "More piers needed"},
		},
		apply: scoreBeam,
	},
	{
		profile: archetypeProfile{
			Archetype:      domain.ArchetypeTruss,
			Base:           50,
			Name:           "Truss Bridge",
			StructuralType: "Steel Truss",
			Band:           scoreBand{Min: 35, Max: 90},
			Reasons:        []string{"Strong and efficient design"},
			Pros:           []string{"Strong structure", "Efficient material use", "Good load distribution"},
			Cons:           []string{"More complex construction", "Maintenance requirements", "Visual impact"},
		},
		apply: scoreTruss,
	},
}

// Score оценивает все пять конструкций и возвращает их по убыванию пригодности
func (AdvisoryScorer) Score(f domain.SiteFactors) []domain.SuitabilityResult {
	return scoreAll(advisoryRules, f)
}

// Band возвращает диапазон оценки конструкции
func (AdvisoryScorer) Band(a domain.Archetype) (lo, hi int) {
	for _, rule := range advisoryRules {
		if rule.profile.Archetype == a {
			return rule.profile.Band.Min, rule.profile.Band.Max
		}
	}
	return 0, 100
}

func scoreSuspension(s siteSignals, c *scoreCard) {
	switch {
	case s.elevation > 2000 && s.slope > 25:
		c.add(25).reason("Ideal for very high elevation and steep terrain").
			pro("Long spans possible", "Minimal ground disturbance")
	case s.elevation > 1000 && s.slope > 20:
		c.add(15).reason("Good for high elevation and steep terrain").pro("Long spans possible")
	case s.elevation > 500:
		c.add(5)
	default:
		c.add(-10).con("Not ideal for low elevation areas")
	}

	switch {
	case s.highSeismic:
		c.add(12).reason("Good seismic resistance with flexible design").pro("Flexible under seismic loads")
	case s.seismic == domain.RiskModerate:
		c.add(5)
	default:
		c.con("Requires strong anchorages")
	}

	if s.highLandslide {
		c.add(8).reason("Minimal ground contact reduces landslide impact")
	}

	switch s.Terrain.SoilType {
	case domain.SoilRocky:
		c.add(5)
	case domain.SoilClay:
		c.add(-5).con("Challenging soil conditions")
	}
}

func scoreArch(s siteSignals, c *scoreCard) {
	mountainous := s.Terrain.TerrainType == domain.TerrainMountainous
	switch {
	case mountainous && s.Geology.RockStability == domain.RockStable:
		c.add(30).reason("Excellent for rocky, stable terrain").
			pro("Natural load distribution", "Durable in stable rock")
	case mountainous && s.Geology.RockStability == domain.RockUnstable:
		c.add(-15).con("Unstable rock conditions")
	case s.Terrain.SoilType == domain.SoilRocky:
		c.add(15).reason("Good for rocky terrain")
	default:
		c.add(-5)
	}

	switch {
	case s.highSeismic:
		c.add(-15).con("Less flexible under seismic loads")
	case s.seismic == domain.RiskModerate:
		c.add(8).reason("Strong and stable for moderate seismic zones")
	default:
		c.add(12)
	}

	switch {
	case s.elevation > 1000:
		c.add(8).reason("Good for elevated crossings")
	case s.elevation > 500:
		c.add(5)
	default:
		c.add(-3)
	}

	if s.highLandslide {
		c.add(-8).con("Vulnerable to landslide damage")
	}
}

func scoreCableStayed(s siteSignals, c *scoreCard) {
	switch {
	case s.highSeismic:
		c.add(20).reason("Excellent seismic performance with redundancy").
			pro("Redundant cable system", "Good seismic damping")
	case s.seismic == domain.RiskModerate:
		c.add(10)
	default:
		c.add(5)
	}

	switch {
	case s.elevation > 1500:
		c.add(12).reason("Suitable for very high elevation crossings")
	case s.elevation > 800:
		c.add(8).reason("Suitable for high elevation crossings")
	case s.elevation > 500:
		c.add(5)
	default:
		c.add(-5)
	}

	switch {
	case s.slope > 30:
		c.add(8).reason("Minimal ground impact on very steep slopes")
	case s.slope > 25:
		c.add(5).reason("Minimal ground impact on steep slopes")
	case s.slope > 15:
		c.add(3)
	}

	if s.highLandslide {
		c.add(8).reason("Fewer piers reduce landslide risk exposure")
	}

	switch s.Terrain.SoilType {
	case domain.SoilRocky:
		c.add(5)
	case domain.SoilClay:
		c.add(-3)
	}
}

func scoreBeam(s siteSignals, c *scoreCard) {
	switch {
	case s.seismic == domain.RiskLow && s.landslide == domain.RiskLow:
		c.add(30).reason("Cost-effective for low-risk areas").
			pro("Lower cost", "Simple construction", "Quick to build")
	case s.seismic == domain.RiskLow && s.landslide == domain.RiskModerate:
		c.add(15).reason("Suitable for low seismic risk areas")
	case s.seismic == domain.RiskModerate && s.landslide == domain.RiskLow:
		c.add(10)
	default:
		c.add(-5)
	}

	if s.highSeismic {
		c.add(-25).con("Not recommended for high seismic risk areas")
	}
	if s.highLandslide {
		c.add(-20).con("Not recommended for high landslide risk areas")
	}

	switch {
	case s.elevation < 300 && s.slope < 10:
		c.add(20).reason("Ideal for flat, low elevation terrain")
	case s.elevation < 500 && s.slope < 15:
		c.add(12).reason("Suitable for moderate terrain")
	case s.elevation > 1000 || s.slope > 20:
		c.add(-15).con("Not suitable for high elevation or steep slopes")
	}

	switch s.Terrain.SoilType {
	case domain.SoilClay, domain.SoilLoamy:
		c.add(5)
	case domain.SoilRocky:
		c.add(-5).con("Challenging for rocky terrain")
	}
}

func scoreTruss(s siteSignals, c *scoreCard) {
	switch {
	case s.elevation > 1500:
		c.add(12).reason("Excellent for very high elevation crossings")
	case s.elevation > 600:
		c.add(8).reason("Good for elevated crossings")
	case s.elevation > 300:
		c.add(5)
	default:
		c.add(-3)
	}

	switch {
	case s.highSeismic:
		c.add(-15).con("May need seismic retrofitting", "Less flexible under seismic loads")
	case s.seismic == domain.RiskModerate:
		c.add(5).reason("Strong and reliable for moderate seismic zones")
	default:
		c.add(12).reason("Excellent for low seismic risk areas")
	}

	switch s.Terrain.SoilType {
	case domain.SoilRocky:
		c.add(10).reason("Works well with rocky foundations")
	case domain.SoilClay:
		c.add(-5).con("Challenging soil conditions")
	}

	switch {
	case s.slope > 20:
		c.add(5)
	case s.slope < 10:
		c.add(3)
	}

	if s.highLandslide {
		c.add(-8).con("Vulnerable to landslide damage")
	}
}
