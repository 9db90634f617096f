package domain

import "github.com/shopspring/decimal"

// Archetype - одна из пяти базовых конструкций моста
type Archetype string

const (
	ArchetypeSuspension  Archetype = "Suspension"
	ArchetypeArch        Archetype = "Arch"
	ArchetypeCableStayed Archetype = "Cable-Stayed"
	ArchetypeBeam        Archetype = "Beam"
	ArchetypeTruss       Archetype = "Truss"
)

// Archetypes - каталог в порядке вставки (порядок важен для стабильной сортировки)
var Archetypes = []Archetype{
	ArchetypeSuspension,
	ArchetypeArch,
	ArchetypeCableStayed,
	ArchetypeBeam,
	ArchetypeTruss,
}

// SuitabilityResult - оценка пригодности конструкции для площадки
type SuitabilityResult struct {
	Archetype        Archetype `json:"archetype"`
	Name             string    `json:"name"`
	StructuralType   string    `json:"structural_type"`
	SuitabilityScore int       `json:"suitability_score"`
	Reasons          []string  `json:"reasons"`
	Pros             []string  `json:"pros"`
	Cons             []string  `json:"cons"`
}

// SubFactors - статические под-оценки конструкции
type SubFactors struct {
	Seismic    int `json:"seismic"`
	Terrain    int `json:"terrain"`
	Geological int `json:"geological"`
	Economic   int `json:"economic"`
}

// CostEstimate - стоимость и жизненный цикл конструкции (суммы в INR)
type CostEstimate struct {
	Archetype              Archetype       `json:"archetype"`
	Name                   string          `json:"name"`
	StructuralType         string          `json:"structural_type"`
	SuitabilityScore       int             `json:"suitability_score"`
	EstimatedCost          decimal.Decimal `json:"estimated_cost"`
	LifespanYears          int             `json:"lifespan_years"`
	MaintenanceCostTotal   decimal.Decimal `json:"maintenance_cost_total"`
	AnnualMaintenance      decimal.Decimal `json:"annual_maintenance"`
	ConstructionTimeMonths int             `json:"construction_time_months"`
	RiskScore              int             `json:"risk_score"`
	SubFactors             SubFactors      `json:"sub_factors"`
	Benefits               []string        `json:"benefits"`
}
