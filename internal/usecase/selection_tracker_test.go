package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	apperrors "github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/usecase"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

type analyzerFunc func(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error)

func (f analyzerFunc) Analyze(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
	return f(ctx, c)
}

func instantAnalyzer() analyzerFunc {
	return func(_ context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
		return &dto.AnalysisResponse{Analysis: &domain.SiteAnalysis{ID: uuid.New(), Point: c}}, nil
	}
}

func TestSelectionTracker_Select(t *testing.T) {
	tracker := usecase.NewSelectionTracker(instantAnalyzer(), zap.NewNop())

	resp, err := tracker.Select(context.Background(), "s1", paris)
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.Session)
	assert.Equal(t, paris, resp.Analysis.Point)

	current, ok := tracker.Current("s1")
	require.True(t, ok)
	assert.Same(t, resp.Analysis, current)

	_, ok = tracker.Current("other")
	assert.False(t, ok)
}

func TestSelectionTracker_LastQueryWins(t *testing.T) {
	first := domain.Coordinate{Lat: 10, Lng: 10}
	second := domain.Coordinate{Lat: 20, Lng: 20}

	started := make(chan struct{})
	analyzer := analyzerFunc(func(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
		if c == first {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return &dto.AnalysisResponse{Analysis: &domain.SiteAnalysis{Point: c}}, nil
	})
	tracker := usecase.NewSelectionTracker(analyzer, zap.NewNop())

	firstErr := make(chan error, 1)
	go func() {
		_, err := tracker.Select(context.Background(), "s1", first)
		firstErr <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first selection did not start")
	}

	resp, err := tracker.Select(context.Background(), "s1", second)
	require.NoError(t, err)
	assert.Equal(t, second, resp.Analysis.Point)

	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, apperrors.ErrSelectionSuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded selection was not cancelled")
	}

	current, ok := tracker.Current("s1")
	require.True(t, ok)
	assert.Equal(t, second, current.Point)
}

func TestSelectionTracker_StaleResultIsIgnored(t *testing.T) {
	first := domain.Coordinate{Lat: 10, Lng: 10}
	second := domain.Coordinate{Lat: 20, Lng: 20}

	release := make(chan struct{})
	started := make(chan struct{})
	// первый анализ игнорирует отмену и завершается после второго
	analyzer := analyzerFunc(func(_ context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
		if c == first {
			close(started)
			<-release
		}
		return &dto.AnalysisResponse{Analysis: &domain.SiteAnalysis{Point: c}}, nil
	})
	tracker := usecase.NewSelectionTracker(analyzer, zap.NewNop())

	firstErr := make(chan error, 1)
	go func() {
		_, err := tracker.Select(context.Background(), "s1", first)
		firstErr <- err
	}()
	<-started

	_, err := tracker.Select(context.Background(), "s1", second)
	require.NoError(t, err)
	close(release)

	assert.ErrorIs(t, <-firstErr, apperrors.ErrSelectionSuperseded)
	current, ok := tracker.Current("s1")
	require.True(t, ok)
	assert.Equal(t, second, current.Point)
}

func TestSelectionTracker_SessionsAreIndependent(t *testing.T) {
	tracker := usecase.NewSelectionTracker(instantAnalyzer(), zap.NewNop())

	a := domain.Coordinate{Lat: 1, Lng: 1}
	b := domain.Coordinate{Lat: 2, Lng: 2}
	_, err := tracker.Select(context.Background(), "a", a)
	require.NoError(t, err)
	_, err = tracker.Select(context.Background(), "b", b)
	require.NoError(t, err)

	ca, _ := tracker.Current("a")
	cb, _ := tracker.Current("b")
	assert.Equal(t, a, ca.Point)
	assert.Equal(t, b, cb.Point)
}

func TestSelectionTracker_ErrorKeepsPreviousSelection(t *testing.T) {
	bad := domain.Coordinate{Lat: 99, Lng: 0}
	analyzer := analyzerFunc(func(ctx context.Context, c domain.Coordinate) (*dto.AnalysisResponse, error) {
		if c == bad {
			return nil, apperrors.ErrInvalidCoordinates
		}
		return instantAnalyzer()(ctx, c)
	})
	tracker := usecase.NewSelectionTracker(analyzer, zap.NewNop())

	_, err := tracker.Select(context.Background(), "s1", paris)
	require.NoError(t, err)

	_, err = tracker.Select(context.Background(), "s1", bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)

	current, ok := tracker.Current("s1")
	require.True(t, ok)
	assert.Equal(t, paris, current.Point)
}

func TestSelectionTracker_EmptySession(t *testing.T) {
	tracker := usecase.NewSelectionTracker(instantAnalyzer(), zap.NewNop())

	_, err := tracker.Select(context.Background(), "", paris)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestSelectionTracker_Forget(t *testing.T) {
	started := make(chan struct{})
	analyzer := analyzerFunc(func(ctx context.Context, _ domain.Coordinate) (*dto.AnalysisResponse, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	tracker := usecase.NewSelectionTracker(analyzer, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := tracker.Select(context.Background(), "s1", paris)
		done <- err
	}()
	<-started

	tracker.Forget("s1")

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, apperrors.ErrSelectionSuperseded))
	case <-time.After(time.Second):
		t.Fatal("forgotten selection was not cancelled")
	}

	_, ok := tracker.Current("s1")
	assert.False(t, ok)
}

func TestSelectionTracker_IdleSessionsAreEvicted(t *testing.T) {
	clock := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	tracker := usecase.NewSelectionTracker(instantAnalyzer(), zap.NewNop()).
		WithIdleTTL(30 * time.Minute).
		WithClock(func() time.Time { return clock })
	ctx := context.Background()

	_, err := tracker.Select(ctx, "idle", paris)
	require.NoError(t, err)
	_, err = tracker.Select(ctx, "active", paris)
	require.NoError(t, err)
	assert.Equal(t, 2, tracker.Len())

	clock = clock.Add(20 * time.Minute)
	_, ok := tracker.Current("active")
	require.True(t, ok)

	// "idle" простаивает 35 минут, "active" - 15
	clock = clock.Add(15 * time.Minute)
	_, err = tracker.Select(ctx, "new", paris)
	require.NoError(t, err)
	assert.Equal(t, 2, tracker.Len())

	_, ok = tracker.Current("idle")
	assert.False(t, ok)
	_, ok = tracker.Current("active")
	assert.True(t, ok)

	// просроченная сессия не отдаётся и без общей чистки
	clock = clock.Add(31 * time.Minute)
	_, ok = tracker.Current("new")
	assert.False(t, ok)
	assert.Equal(t, 1, tracker.Len())
}
