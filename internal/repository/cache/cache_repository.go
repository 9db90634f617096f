package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// evict удаляет запись, которую не удалось разобрать
func (r *cacheRepository) evict(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Warn("Failed to evict cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	r.logger.Debug("Cache entry evicted", zap.String("key", key))
}

// GetAnalysis получает анализ площадки из кеша
func (r *cacheRepository) GetAnalysis(ctx context.Context, key string) (*domain.SiteAnalysis, error) {
	var a domain.SiteAnalysis
	found, err := r.getJSON(ctx, key, &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// SetAnalysis сохраняет анализ площадки в кеше
func (r *cacheRepository) SetAnalysis(ctx context.Context, key string, a *domain.SiteAnalysis, ttl time.Duration) error {
	return r.setJSON(ctx, key, a, ttl)
}

// GetGeocode получает результат геокодирования из кеша
func (r *cacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	var res domain.GeocodeResult
	found, err := r.getJSON(ctx, GeocodeKey(query), &res)
	if err != nil || !found {
		return nil, err
	}
	return &res, nil
}

// SetGeocode сохраняет результат геокодирования в кеше
func (r *cacheRepository) SetGeocode(ctx context.Context, query string, res *domain.GeocodeResult, ttl time.Duration) error {
	return r.setJSON(ctx, GeocodeKey(query), res, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// запись старого формата или повреждённая: удаляем и пересчитываем
		r.logger.Warn("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		r.evict(ctx, key)
		return false, nil
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return r.Set(ctx, key, data, ttl)
}
