// Package analysis содержит чистый движок оценки площадок под мост:
// сводку землетрясений, классификацию рельефа и грунта, геологические
// факторы и политики оценки конструкций. Пакет не выполняет I/O.
package analysis

import (
	"encoding/binary"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/cespare/xxhash/v2"
)

// Соли для независимых псевдослучайных долей одной координаты
const (
	SaltElevation uint64 = 1
	SaltSlope     uint64 = 7
	SaltTerrain   uint64 = 11
	SaltErosion   uint64 = 13
	SaltSoil      uint64 = 17
)

// UnitFraction детерминированно отображает координату и соль в [0, 1).
// Одинаковые аргументы всегда дают одно и то же значение на любой платформе.
func UnitFraction(c domain.Coordinate, salt uint64) float64 {
	lat, lng := c.Bits()

	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], lat)
	binary.LittleEndian.PutUint64(buf[8:16], lng)
	binary.LittleEndian.PutUint64(buf[16:24], salt)

	// старшие 53 бита помещаются в мантиссу float64 без потерь
	return float64(xxhash.Sum64(buf[:])>>11) / (1 << 53)
}

// fractions - набор долей, используемых классификаторами
type fractions struct {
	elevation float64
	slope     float64
	terrain   float64
	soil      float64
	erosion   float64
}

func drawFractions(c domain.Coordinate) fractions {
	return fractions{
		elevation: UnitFraction(c, SaltElevation),
		slope:     UnitFraction(c, SaltSlope),
		terrain:   UnitFraction(c, SaltTerrain),
		soil:      UnitFraction(c, SaltSoil),
		erosion:   UnitFraction(c, SaltErosion),
	}
}
