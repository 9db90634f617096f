package domain

import (
	"fmt"
	"math"
)

// Coordinate - географическая точка в градусах
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat" db:"lat"`
	Lng float64 `json:"lng" yaml:"lng" db:"lng"`
}

// IsValid проверяет диапазоны широты и долготы
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Bits возвращает точное двоичное представление широты и долготы;
// -0 сводится к 0. Это единственная идентичность точки для производных
// факторов и ключей кеша.
func (c Coordinate) Bits() (lat, lng uint64) {
	return math.Float64bits(positiveZero(c.Lat)), math.Float64bits(positiveZero(c.Lng))
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
