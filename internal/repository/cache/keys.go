package cache

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/cespare/xxhash/v2"
)

const (
	analysisKeyPrefix = "site:analysis:"
	geocodeKeyPrefix  = "site:geocode:"
	keyVersion        = "v2"
)

// AnalysisKey - ключ анализа: точные биты координат и UTC-день оценки.
// Факторы выводятся из тех же битов, поэтому разные точки не делят запись.
// День входит в ключ, потому что окно "недавних" землетрясений зависит от даты.
func AnalysisKey(c domain.Coordinate, at time.Time) string {
	lat, lng := c.Bits()

	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:8], lat)
	binary.LittleEndian.PutUint64(buf[8:16], lng)
	binary.LittleEndian.PutUint32(buf[16:20], uint32(at.UTC().Unix()/86400))

	d := xxhash.New()
	_, _ = d.WriteString(keyVersion)
	_, _ = d.Write(buf[:])
	return analysisKeyPrefix + strconv.FormatUint(d.Sum64(), 16)
}

// GeocodeKey - ключ результата геокодирования по нормализованному запросу
func GeocodeKey(query string) string {
	return geocodeKeyPrefix + strconv.FormatUint(xxhash.Sum64String(NormalizeQuery(query)), 16)
}

// NormalizeQuery приводит запрос к нижнему регистру и схлопывает пробелы
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
