package usecase

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
)

// ParseCoordinates разбирает ручной ввод "lat, lng" (запятая и/или пробелы).
// Нечисловой ввод и значения вне диапазона - INVALID_COORDINATES.
func ParseCoordinates(input string) (domain.Coordinate, error) {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	invalid := func(reason string) error {
		return errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"input":  input,
			"reason": reason,
		})
	}

	if len(parts) != 2 {
		return domain.Coordinate{}, invalid("expected latitude and longitude")
	}

	lat, err := parseDegrees(parts[0])
	if err != nil {
		return domain.Coordinate{}, invalid("latitude is not a number")
	}
	lng, err := parseDegrees(parts[1])
	if err != nil {
		return domain.Coordinate{}, invalid("longitude is not a number")
	}

	if !utils.ValidateCoordinates(lat, lng) {
		return domain.Coordinate{}, invalid("out of range")
	}
	return domain.Coordinate{Lat: lat, Lng: lng}, nil
}

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
