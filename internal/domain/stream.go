package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamSiteAnalyze  = "stream:site:analyze"
	StreamSiteAnalyzed = "stream:site:analyzed"
)

// SiteAnalyzeEvent - входящая заявка на анализ площадки.
// Площадка задаётся координатами либо названием места для геокодера.
type SiteAnalyzeEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Place     *string   `json:"place,omitempty"`
}

// HasCoordinates проверяет, что заданы обе координаты
func (e *SiteAnalyzeEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// HasPlace проверяет наличие непустого названия места
func (e *SiteAnalyzeEvent) HasPlace() bool {
	return e.Place != nil && *e.Place != ""
}

// SiteAnalyzedEvent - результат анализа
type SiteAnalyzedEvent struct {
	RequestID    uuid.UUID     `json:"request_id"`
	AnalysisID   *uuid.UUID    `json:"analysis_id,omitempty"`
	Point        *Coordinate   `json:"point,omitempty"`
	Source       string        `json:"source,omitempty"`
	TopArchetype Archetype     `json:"top_archetype,omitempty"`
	Analysis     *SiteAnalysis `json:"analysis,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
