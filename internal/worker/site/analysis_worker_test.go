package site

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// MockStreamRepository is a mock implementation of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimStale(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type analyzerFunc func(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error)

func (f analyzerFunc) Analyze(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
	return f(ctx, c)
}

type searcherFunc func(ctx context.Context, q string) (*dto.SearchResponse, error)

func (f searcherFunc) Search(ctx context.Context, q string) (*dto.SearchResponse, error) {
	return f(ctx, q)
}

func okAnalyzer(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
	return &dto.AnalysisResponse{Analysis: &domain.SiteAnalysis{
		ID:     uuid.New(),
		Point:  c,
		Source: domain.SourceDerived,
		Suggestions: []domain.SuitabilityResult{
			{Archetype: domain.ArchetypeBeam, SuitabilityScore: 90},
			{Archetype: domain.ArchetypeTruss, SuitabilityScore: 80},
		},
	}}, nil
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func message(t *testing.T, id string, event domain.SiteAnalyzeEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func newTestWorker(repo *MockStreamRepository, analyzer analyzerFunc, searcher PlaceSearcher) *AnalysisWorker {
	return NewAnalysisWorker(repo, analyzer, searcher, Config{
		ConsumerGroup: "test-group",
		BatchSize:     5,
		Concurrency:   2,
		MaxRetries:    2,
		ClaimMinIdle:  30 * time.Second,
	}, zap.NewNop())
}

// noStale - в pending нет зависших сообщений
func noStale(repo *MockStreamRepository) {
	repo.On("ClaimStale", mock.Anything, domain.StreamSiteAnalyze, "test-group", mock.Anything, 30*time.Second, int64(5)).
		Return([]domain.StreamMessage{}, nil)
}

func TestProcessBatch_CoordinatesAndMalformed(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)
	noStale(repo)

	reqID := uuid.New()
	msgs := []domain.StreamMessage{
		message(t, "1-0", domain.SiteAnalyzeEvent{RequestID: reqID, Latitude: f64(48.85), Longitude: f64(2.35)}),
		{ID: "2-0", Data: "{not json"},
	}

	repo.On("ConsumeBatch", mock.Anything, domain.StreamSiteAnalyze, "test-group", w.ConsumerName(), int64(5)).
		Return(msgs, nil)
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.MatchedBy(func(e *domain.SiteAnalyzedEvent) bool {
		return e.RequestID == reqID &&
			e.Error == "" &&
			e.TopArchetype == domain.ArchetypeBeam &&
			e.Source == string(domain.SourceDerived) &&
			e.Point != nil && e.Point.Lat == 48.85
	})).Return(nil).Once()
	repo.On("AckMessages", mock.Anything, domain.StreamSiteAnalyze, "test-group", mock.MatchedBy(func(ids []string) bool {
		return assert.ElementsMatch(t, []string{"1-0", "2-0"}, ids)
	})).Return(nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestProcessBatch_PlaceLookup(t *testing.T) {
	repo := new(MockStreamRepository)
	searcher := searcherFunc(func(ctx context.Context, q string) (*dto.SearchResponse, error) {
		assert.Equal(t, "Guwahati", q)
		return &dto.SearchResponse{Result: &domain.GeocodeResult{
			Point:       domain.Coordinate{Lat: 26.14, Lng: 91.73},
			DisplayName: "Guwahati, Assam, India",
		}}, nil
	})
	w := newTestWorker(repo, okAnalyzer, searcher)
	noStale(repo)

	repo.On("ConsumeBatch", mock.Anything, domain.StreamSiteAnalyze, "test-group", mock.Anything, int64(5)).
		Return([]domain.StreamMessage{message(t, "1-0", domain.SiteAnalyzeEvent{RequestID: uuid.New(), Place: str("Guwahati")})}, nil)
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.MatchedBy(func(e *domain.SiteAnalyzedEvent) bool {
		return e.Error == "" && e.Point != nil && e.Point.Lat == 26.14 && e.Analysis != nil
	})).Return(nil).Once()
	repo.On("AckMessages", mock.Anything, domain.StreamSiteAnalyze, "test-group", []string{"1-0"}).Return(nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestProcessBatch_AnalysisErrorIsPublished(t *testing.T) {
	repo := new(MockStreamRepository)
	failing := analyzerFunc(func(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
		return nil, errors.New("boom")
	})
	w := newTestWorker(repo, failing, nil)
	noStale(repo)

	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SiteAnalyzeEvent{RequestID: uuid.New(), Latitude: f64(10), Longitude: f64(10)}),
			message(t, "2-0", domain.SiteAnalyzeEvent{RequestID: uuid.New()}),
		}, nil)
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.MatchedBy(func(e *domain.SiteAnalyzedEvent) bool {
		return e.Error != "" && e.Analysis == nil
	})).Return(nil).Twice()
	repo.On("AckMessages", mock.Anything, domain.StreamSiteAnalyze, "test-group", mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	})).Return(nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestProcessBatch_PublishFailureLeavesPending(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)
	noStale(repo)

	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SiteAnalyzeEvent{RequestID: uuid.New(), Latitude: f64(10), Longitude: f64(10)}),
		}, nil)
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.Anything).
		Return(errors.New("redis down")).Times(2)

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessBatch_EmptyAndConsumeError(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)
	noStale(repo)

	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil).Once()
	require.NoError(t, w.processBatch(context.Background()))

	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()
	assert.Error(t, w.processBatch(context.Background()))
}

func TestProcessBatch_ClaimsStaleFirst(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)

	staleID := uuid.New()
	repo.On("ClaimStale", mock.Anything, domain.StreamSiteAnalyze, "test-group", w.ConsumerName(), 30*time.Second, int64(5)).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.SiteAnalyzeEvent{RequestID: staleID, Latitude: f64(30.7), Longitude: f64(79.1)}),
		}, nil).Once()
	// зависшее сообщение занимает одно место в пачке
	repo.On("ConsumeBatch", mock.Anything, domain.StreamSiteAnalyze, "test-group", w.ConsumerName(), int64(4)).
		Return([]domain.StreamMessage{}, nil).Once()
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.MatchedBy(func(e *domain.SiteAnalyzedEvent) bool {
		return e.RequestID == staleID && e.Error == ""
	})).Return(nil).Once()
	repo.On("AckMessages", mock.Anything, domain.StreamSiteAnalyze, "test-group", []string{"1-0"}).Return(nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestProcessBatch_UnackedMessageIsRedelivered(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)

	msg := message(t, "7-0", domain.SiteAnalyzeEvent{RequestID: uuid.New(), Latitude: f64(10), Longitude: f64(10)})

	// первая пачка: публикация не удалась, сообщение остаётся в pending
	repo.On("ClaimStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil).Once()
	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(5)).
		Return([]domain.StreamMessage{msg}, nil).Once()
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.Anything).
		Return(errors.New("redis down")).Times(2)

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// вторая пачка: то же сообщение забрано из pending, опубликовано и подтверждено
	repo.On("ClaimStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{msg}, nil).Once()
	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(4)).
		Return([]domain.StreamMessage{}, nil).Once()
	repo.On("PublishToStream", mock.Anything, domain.StreamSiteAnalyzed, mock.Anything).
		Return(nil).Once()
	repo.On("AckMessages", mock.Anything, domain.StreamSiteAnalyze, "test-group", []string{"7-0"}).Return(nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestProcessBatch_ClaimErrorStillReadsNew(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)

	repo.On("ClaimStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("NOSCRIPT")).Once()
	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(5)).
		Return([]domain.StreamMessage{}, nil).Once()

	require.NoError(t, w.processBatch(context.Background()))
	repo.AssertExpectations(t)
}

func TestStart_StopsOnStop(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)
	noStale(repo)

	repo.On("CreateConsumerGroup", mock.Anything, domain.StreamSiteAnalyze, "test-group").Return(nil)
	repo.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(5 * time.Millisecond) }).
		Return([]domain.StreamMessage{}, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestStart_ConsumerGroupError(t *testing.T) {
	repo := new(MockStreamRepository)
	w := newTestWorker(repo, okAnalyzer, nil)
	noStale(repo)

	repo.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("denied"))
	assert.Error(t, w.Start(context.Background()))
}
