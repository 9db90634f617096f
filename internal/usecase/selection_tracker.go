package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// SiteAnalyzer - то, что умеет анализировать точку
type SiteAnalyzer interface {
	Analyze(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error)
}

// DefaultSessionIdleTTL - сколько хранится сессия без обращений
const DefaultSessionIdleTTL = 30 * time.Minute

type selection struct {
	seq      uint64
	cancel   context.CancelFunc
	current  *domain.SiteAnalysis
	lastSeen time.Time
}

// SelectionTracker хранит текущий выбор площадки в каждой сессии.
// Побеждает последний запрос: новый выбор отменяет незавершённый предыдущий,
// и результат устаревшего запроса никогда не становится текущим.
// Сессии без обращений дольше idleTTL и без незавершённого выбора удаляются.
type SelectionTracker struct {
	analyzer SiteAnalyzer
	logger   *zap.Logger
	idleTTL  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	sessions  map[string]*selection
	lastSweep time.Time
}

// NewSelectionTracker создает SelectionTracker
func NewSelectionTracker(analyzer SiteAnalyzer, logger *zap.Logger) *SelectionTracker {
	return &SelectionTracker{
		analyzer: analyzer,
		logger:   logger,
		idleTTL:  DefaultSessionIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*selection),
	}
}

// WithIdleTTL задаёт время жизни простаивающей сессии
func (t *SelectionTracker) WithIdleTTL(ttl time.Duration) *SelectionTracker {
	if ttl > 0 {
		t.idleTTL = ttl
	}
	return t
}

// WithClock подменяет источник текущего времени
func (t *SelectionTracker) WithClock(now func() time.Time) *SelectionTracker {
	t.now = now
	return t
}

// Len возвращает число хранимых сессий
func (t *SelectionTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// sweepLocked удаляет простаивающие сессии; вызывается под mu не чаще раза в idleTTL/2
func (t *SelectionTracker) sweepLocked(now time.Time) {
	if now.Sub(t.lastSweep) < t.idleTTL/2 {
		return
	}
	t.lastSweep = now

	for id, s := range t.sessions {
		if s.cancel == nil && t.expired(s, now) {
			delete(t.sessions, id)
		}
	}
}

func (t *SelectionTracker) expired(s *selection, now time.Time) bool {
	return now.Sub(s.lastSeen) > t.idleTTL
}

// Select анализирует точку и делает её текущим выбором сессии
func (t *SelectionTracker) Select(ctx context.Context, session string, c domain.Coordinate) (*dto.SelectionResponse, error) {
	if session == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"session": "must not be empty",
		})
	}

	t.mu.Lock()
	now := t.now()
	t.sweepLocked(now)
	s, ok := t.sessions[session]
	if !ok {
		s = &selection{}
		t.sessions[session] = s
	}
	s.lastSeen = now
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	actx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	t.mu.Unlock()

	defer cancel()

	resp, err := t.analyzer.Analyze(actx, c)

	t.mu.Lock()
	defer t.mu.Unlock()

	if s.seq != seq {
		t.logger.Debug("Selection superseded",
			zap.String("session", session),
			zap.Float64("lat", c.Lat),
			zap.Float64("lng", c.Lng))
		return nil, errors.ErrSelectionSuperseded
	}
	s.cancel = nil
	s.lastSeen = t.now()
	if err != nil {
		return nil, err
	}

	s.current = resp.Analysis
	return &dto.SelectionResponse{
		Session:  session,
		Analysis: resp.Analysis,
		Cached:   resp.Cached,
	}, nil
}

// Current возвращает текущий выбор сессии
func (t *SelectionTracker) Current(session string) (*domain.SiteAnalysis, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	s, ok := t.sessions[session]
	if !ok {
		return nil, false
	}
	if s.cancel == nil && t.expired(s, now) {
		delete(t.sessions, session)
		return nil, false
	}
	s.lastSeen = now
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Forget отменяет незавершённый выбор и удаляет сессию
func (t *SelectionTracker) Forget(session string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[session]; ok {
		if s.cancel != nil {
			s.cancel()
		}
		s.seq++
		delete(t.sessions, session)
	}
}
