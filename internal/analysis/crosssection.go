package analysis

import (
	"fmt"

	"github.com/bridge-site-analyzer/internal/domain"
)

const (
	topsoilDepth       = 2.0
	bedrockLayerHeight = 10.0
)

var soilColors = map[domain.SoilType]string{
	domain.SoilRocky: "#6B6B6B",
	domain.SoilClay:  "#8B6F47",
	domain.SoilSandy: "#D4A574",
	domain.SoilLoamy: "#9B7D5E",
	domain.SoilMixed: "#7A6B5A",
}

// BuildCrossSection строит упрощённый разрез грунта под площадкой
func BuildCrossSection(t domain.TerrainProfile, g domain.GeologicalFactors) domain.CrossSection {
	subsoilDepth := topsoilDepth + 5
	if t.SoilType == domain.SoilRocky {
		subsoilDepth = topsoilDepth + 3
	}

	bedrockDepth := subsoilDepth + 12
	if g.RockStability == domain.RockStable {
		bedrockDepth = subsoilDepth + 8
	}

	subsoilColor, ok := soilColors[t.SoilType]
	if !ok {
		subsoilColor = "#8B7355"
	}

	layers := []domain.SoilLayer{
		{
			Name:         "Surface Layer",
			DepthMeters:  0,
			HeightMeters: topsoilDepth,
			Color:        "#8B7355",
			Description:  "Top layer affected by weathering and erosion. Contains organic matter.",
		},
		{
			Name:         "Topsoil",
			DepthMeters:  topsoilDepth,
			HeightMeters: subsoilDepth - topsoilDepth,
			Color:        "#A0826D",
			Description:  fmt.Sprintf("Rich in organic matter. %s composition affects foundation design.", t.SoilType),
		},
		{
			Name:         "Subsoil",
			DepthMeters:  subsoilDepth,
			HeightMeters: bedrockDepth - subsoilDepth,
			Color:        subsoilColor,
			Description:  fmt.Sprintf("Denser layer with %s characteristics. Critical for foundation bearing capacity.", t.SoilType),
		},
		{
			Name:         "Bedrock",
			DepthMeters:  bedrockDepth,
			HeightMeters: bedrockLayerHeight,
			Color:        "#5A5A5A",
			Description: fmt.Sprintf("%s rock layer. Provides stable foundation base. "+
				"Recommended foundation depth extends into this layer.", g.RockStability),
		},
	}

	return domain.CrossSection{
		Layers:                   layers,
		BedrockDepthMeters:       bedrockDepth,
		WaterTableDepthMeters:    waterTableDepth(g.WaterTable, bedrockDepth),
		MinFoundationDepthMeters: bedrockDepth + 2,
	}
}

func waterTableDepth(w domain.WaterTable, bedrockDepth float64) float64 {
	switch w {
	case domain.WaterTableHigh:
		return bedrockDepth - 2
	case domain.WaterTableVariable:
		return bedrockDepth - 5
	case domain.WaterTableLow:
		return bedrockDepth + 5
	default:
		return bedrockDepth - 3
	}
}
