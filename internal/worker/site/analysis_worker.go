package site

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/bridge-site-analyzer/internal/usecase"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
	"github.com/bridge-site-analyzer/internal/worker"
)

const (
	defaultBatchSize   = 10
	defaultConcurrency = 4
	defaultMaxRetries  = 3
	defaultClaimIdle   = time.Minute
	retryBackoff       = 200 * time.Millisecond
	errorBackoff       = time.Second
)

// PlaceSearcher находит координаты по названию места
type PlaceSearcher interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// Config - параметры AnalysisWorker
type Config struct {
	ConsumerGroup string
	BatchSize     int
	Concurrency   int
	MaxRetries    int
	// ClaimMinIdle - сколько сообщение должно провисеть в pending, прежде чем его заберут повторно
	ClaimMinIdle time.Duration
}

// AnalysisWorker читает заявки из stream:site:analyze, анализирует площадки
// и публикует результаты в stream:site:analyzed.
// Сообщение подтверждается только после успешной публикации результата.
// Неподтверждённые заявки остаются в pending и в начале каждой пачки
// забираются повторно (XAUTOCLAIM), когда провисят дольше ClaimMinIdle.
type AnalysisWorker struct {
	*worker.BaseWorker
	streamRepo  repository.StreamRepository
	analyzer    usecase.SiteAnalyzer
	searcher    PlaceSearcher
	batchSize   int
	concurrency int
	maxRetries  int
	claimIdle   time.Duration
}

// NewAnalysisWorker создает новый AnalysisWorker
func NewAnalysisWorker(
	streamRepo repository.StreamRepository,
	analyzer usecase.SiteAnalyzer,
	searcher PlaceSearcher,
	cfg Config,
	logger *zap.Logger,
) *AnalysisWorker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.ClaimMinIdle <= 0 {
		cfg.ClaimMinIdle = defaultClaimIdle
	}

	return &AnalysisWorker{
		BaseWorker:  worker.NewBaseWorker("site-analysis", cfg.ConsumerGroup, logger),
		streamRepo:  streamRepo,
		analyzer:    analyzer,
		searcher:    searcher,
		batchSize:   cfg.BatchSize,
		concurrency: cfg.Concurrency,
		maxRetries:  cfg.MaxRetries,
		claimIdle:   cfg.ClaimMinIdle,
	}
}

// Start запускает цикл обработки пачек
func (w *AnalysisWorker) Start(ctx context.Context) error {
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSiteAnalyze, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.Logger().Info("Site analysis worker started",
		zap.String("stream", domain.StreamSiteAnalyze),
		zap.String("group", w.ConsumerGroup()),
		zap.String("consumer", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize),
		zap.Int("concurrency", w.concurrency))

	for {
		select {
		case <-w.StopChan():
			w.Logger().Info("Site analysis worker stopped")
			return nil
		case <-ctx.Done():
			w.Logger().Info("Site analysis worker context cancelled")
			return ctx.Err()
		default:
		}

		if err := w.processBatch(ctx); err != nil {
			w.Logger().Error("Failed to process batch", zap.Error(err))
			select {
			case <-time.After(errorBackoff):
			case <-w.StopChan():
			case <-ctx.Done():
			}
		}
	}
}

// processBatch обрабатывает одну пачку сообщений
func (w *AnalysisWorker) processBatch(ctx context.Context) error {
	messages, err := w.streamRepo.ClaimStale(ctx, domain.StreamSiteAnalyze, w.ConsumerGroup(), w.ConsumerName(), w.claimIdle, int64(w.batchSize))
	if err != nil {
		// зависшие заявки подождут следующей пачки, новые читаем как обычно
		w.Logger().Warn("Failed to claim stale messages", zap.Error(err))
		messages = nil
	}

	if free := w.batchSize - len(messages); free > 0 {
		fresh, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamSiteAnalyze, w.ConsumerGroup(), w.ConsumerName(), int64(free))
		if err != nil {
			if len(messages) == 0 {
				return fmt.Errorf("failed to consume batch: %w", err)
			}
			w.Logger().Warn("Failed to consume new messages", zap.Error(err))
		}
		messages = append(messages, fresh...)
	}
	if len(messages) == 0 {
		return nil
	}

	var (
		mu    sync.Mutex
		toAck = make([]string, 0, len(messages))
	)
	ack := func(id string) {
		mu.Lock()
		toAck = append(toAck, id)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, msg := range messages {
		var event domain.SiteAnalyzeEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			w.Logger().Warn("Skipping malformed message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ack(msg.ID)
			continue
		}

		msgID := msg.ID
		g.Go(func() error {
			result := w.handle(gctx, &event)
			if err := w.publish(gctx, result); err != nil {
				w.Logger().Error("Failed to publish result, message left pending",
					zap.String("message_id", msgID),
					zap.String("request_id", event.RequestID.String()),
					zap.Error(err))
				return nil
			}
			ack(msgID)
			return nil
		})
	}

	_ = g.Wait()

	if len(toAck) == 0 {
		return nil
	}
	if err := w.streamRepo.AckMessages(ctx, domain.StreamSiteAnalyze, w.ConsumerGroup(), toAck...); err != nil {
		return fmt.Errorf("failed to ack messages: %w", err)
	}

	w.Logger().Debug("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(toAck)))

	return nil
}

// handle превращает заявку в результат; ошибки анализа попадают в поле Error
func (w *AnalysisWorker) handle(ctx context.Context, event *domain.SiteAnalyzeEvent) *domain.SiteAnalyzedEvent {
	result := &domain.SiteAnalyzedEvent{RequestID: event.RequestID}

	point, err := w.resolve(ctx, event)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Point = &point

	resp, err := w.analyzer.Analyze(ctx, point)
	if err != nil {
		w.Logger().Warn("Site analysis failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Float64("lat", point.Lat),
			zap.Float64("lng", point.Lng),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	a := resp.Analysis
	result.AnalysisID = &a.ID
	result.Source = string(a.Source)
	result.TopArchetype = a.TopArchetype()
	result.Analysis = a
	return result
}

func (w *AnalysisWorker) resolve(ctx context.Context, event *domain.SiteAnalyzeEvent) (domain.Coordinate, error) {
	switch {
	case event.HasCoordinates():
		return domain.Coordinate{Lat: *event.Latitude, Lng: *event.Longitude}, nil
	case event.HasPlace():
		if w.searcher == nil {
			return domain.Coordinate{}, fmt.Errorf("place lookup is not configured")
		}
		found, err := w.searcher.Search(ctx, *event.Place)
		if err != nil {
			return domain.Coordinate{}, err
		}
		return found.Result.Point, nil
	default:
		return domain.Coordinate{}, fmt.Errorf("event has neither coordinates nor place")
	}
}

// publish отправляет результат с повторами и линейной задержкой
func (w *AnalysisWorker) publish(ctx context.Context, result *domain.SiteAnalyzedEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamSiteAnalyzed, result); err == nil {
			return nil
		}
		if attempt == w.maxRetries {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * retryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("publish failed after %d attempts: %w", w.maxRetries, err)
}
