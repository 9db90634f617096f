package dto

import "github.com/bridge-site-analyzer/internal/domain"

// AnalyzeRequest - запрос на анализ площадки по координатам
type AnalyzeRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// Coordinate возвращает точку запроса; вызывать после валидации
func (r AnalyzeRequest) Coordinate() domain.Coordinate {
	return domain.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

// SearchRequest - поиск места по названию
type SearchRequest struct {
	Query string `json:"q" query:"q" validate:"required,min=2,max=200"`
}

// ParseCoordinatesRequest - ручной ввод координат строкой "lat, lng"
type ParseCoordinatesRequest struct {
	Query string `json:"q" query:"q" validate:"required,max=100"`
}

// HistoryListRequest - последние анализы
type HistoryListRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
