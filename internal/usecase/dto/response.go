package dto

import "github.com/bridge-site-analyzer/internal/domain"

// AnalysisResponse - результат анализа и признак попадания в кеш
type AnalysisResponse struct {
	Analysis *domain.SiteAnalysis `json:"analysis"`
	Cached   bool                 `json:"cached"`
}

// SearchResponse - лучшее совпадение геокодера
type SearchResponse struct {
	Result *domain.GeocodeResult `json:"result"`
	Cached bool                  `json:"cached"`
}

// CatalogEntry - запись справочника с расстоянием до запрошенной точки
type CatalogEntry struct {
	*domain.CatalogLocation
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// SelectionResponse - текущий выбор сессии
type SelectionResponse struct {
	Session  string               `json:"session"`
	Analysis *domain.SiteAnalysis `json:"analysis"`
	Cached   bool                 `json:"cached"`
}
