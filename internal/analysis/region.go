package analysis

import (
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/golang/geo/r1"
)

// Region - именованная географическая зона
type Region string

const (
	RegionHimalayan      Region = "Himalayan"
	RegionWesternGhats   Region = "Western Ghats"
	RegionNortheast      Region = "Northeast"
	RegionCentralIndia   Region = "Central India"
	RegionNorthernPlains Region = "Northern Plains"
	RegionGangeticPlains Region = "Gangetic Plains"
	RegionDeccanPlateau  Region = "Deccan Plateau"
	RegionCoastal        Region = "Coastal"
	RegionRajasthan      Region = "Rajasthan"
	RegionDefault        Region = "Default"
)

// Box - прямоугольник широта x долгота с открытыми границами
type Box struct {
	Lat r1.Interval
	Lng r1.Interval
}

func newBox(latLo, latHi, lngLo, lngHi float64) Box {
	return Box{
		Lat: r1.Interval{Lo: latLo, Hi: latHi},
		Lng: r1.Interval{Lo: lngLo, Hi: lngHi},
	}
}

// Contains - строгое вхождение: точки на границе не принадлежат зоне
func (b Box) Contains(c domain.Coordinate) bool {
	return b.Lat.InteriorContains(c.Lat) && b.Lng.InteriorContains(c.Lng)
}

var (
	himalayanBox      = newBox(25, 35, 75, 95)
	westernGhatsBox   = newBox(8, 15, 73, 78)
	northeastBox      = newBox(22, 28, 90, 97)
	centralIndiaBox   = newBox(20, 26, 74, 82)
	northernPlainsBox = newBox(24, 32, 74, 88)
	deccanPlateauBox  = newBox(15, 20, 73, 80)
	gangeticPlainsBox = newBox(24, 30, 77, 88)
	rajasthanBox      = newBox(24, 30, 69, 78)

	// западное побережье, восточное побережье, Конкан
	coastalBoxes = []Box{
		newBox(8, 15, 73, 78),
		newBox(8, 20, 77, 85),
		newBox(15, 20, 72, 73),
	}
)

// Matcher - предикат принадлежности точки зоне
type Matcher func(domain.Coordinate) bool

func inAny(boxes ...Box) Matcher {
	return func(c domain.Coordinate) bool {
		for _, b := range boxes {
			if b.Contains(c) {
				return true
			}
		}
		return false
	}
}

// band - порог на псевдослучайную долю: значение выбирается при доле > above
type band[T any] struct {
	above float64
	value T
}

// pickBand возвращает значение первого сработавшего порога или fallback
func pickBand[T any](x float64, bands []band[T], fallback T) T {
	for _, b := range bands {
		if x > b.above {
			return b.value
		}
	}
	return fallback
}

// IsHighSeismicZone - Гималаи или северо-восток
func IsHighSeismicZone(c domain.Coordinate) bool {
	return himalayanBox.Contains(c) || northeastBox.Contains(c)
}
