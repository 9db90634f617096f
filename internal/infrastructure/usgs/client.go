package usgs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bridge-site-analyzer/internal/config"
	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	geojson "github.com/paulmach/go.geojson"
	"go.uber.org/zap"
)

const (
	queryPath = "/fdsnws/event/1/query"
	// ответ с сотней событий занимает десятки килобайт
	maxBodyBytes = 8 << 20
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient создает клиент FDSN event API (USGS)
func NewClient(cfg *config.SeismicConfig, logger *zap.Logger) repository.SeismicRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}
}

// FetchEvents возвращает землетрясения в радиусе от точки
func (c *client) FetchEvents(ctx context.Context, q domain.SeismicQuery) ([]domain.SeismicEvent, error) {
	params := url.Values{}
	params.Set("format", "geojson")
	params.Set("latitude", strconv.FormatFloat(q.Point.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Point.Lng, 'f', -1, 64))
	params.Set("maxradiuskm", strconv.FormatFloat(q.RadiusKm, 'f', -1, 64))
	params.Set("limit", strconv.Itoa(q.MaxResults))
	params.Set("minmagnitude", strconv.FormatFloat(q.MinMagnitude, 'f', -1, 64))

	reqURL := c.baseURL + queryPath + "?" + params.Encode()

	c.logger.Debug("Calling USGS event API",
		zap.Float64("lat", q.Point.Lat),
		zap.Float64("lng", q.Point.Lng),
		zap.Float64("radius_km", q.RadiusKm))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("USGS API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.Int("body_size", len(body)))
		return nil, fmt.Errorf("usgs API error: status %d", resp.StatusCode)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode feature collection: %w", err)
	}

	events := make([]domain.SeismicEvent, 0, len(fc.Features))
	for _, f := range fc.Features {
		ev, ok := toEvent(f)
		if !ok {
			c.logger.Debug("Feature without time counted as not recent", zap.Any("id", f.ID))
		}
		events = append(events, ev)
	}

	c.logger.Debug("USGS event API call successful", zap.Int("events", len(events)))
	return events, nil
}

// toEvent извлекает time (мс) и mag (может быть null) из свойств фичи.
// Фича без time остаётся событием с нулевой меткой: она входит в total,
// но никогда не считается недавней. ok сообщает, была ли метка времени.
func toEvent(f *geojson.Feature) (ev domain.SeismicEvent, ok bool) {
	ev.Place = f.PropertyMustString("place", "")
	if f.ID != nil {
		ev.ID = fmt.Sprint(f.ID)
	}
	if mag, err := f.PropertyFloat64("mag"); err == nil {
		ev.Magnitude = &mag
	}

	ts, err := f.PropertyFloat64("time")
	if err != nil {
		return ev, false
	}
	ev.TimestampMillis = int64(ts)
	return ev, true
}
