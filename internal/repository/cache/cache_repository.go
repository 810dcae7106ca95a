package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	gardensKey = "gardens:all"
	statsKey   = "stats:filter-clicks"
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

func (r *cacheRepository) get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetGardens получает список садов из кеша
func (r *cacheRepository) GetGardens(ctx context.Context) ([]*domain.Garden, error) {
	data, err := r.get(ctx, gardensKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var gardens []*domain.Garden
	if err := json.Unmarshal(data, &gardens); err != nil {
		r.logger.Error("Failed to unmarshal gardens from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal gardens: %w", err)
	}

	return gardens, nil
}

// SetGardens сохраняет список садов в кеше
func (r *cacheRepository) SetGardens(ctx context.Context, gardens []*domain.Garden, ttl time.Duration) error {
	data, err := json.Marshal(gardens)
	if err != nil {
		r.logger.Error("Failed to marshal gardens", zap.Error(err))
		return fmt.Errorf("marshal gardens: %w", err)
	}

	return r.set(ctx, gardensKey, data, ttl)
}

func (r *cacheRepository) InvalidateGardens(ctx context.Context) error {
	return r.delete(ctx, gardensKey)
}

// GetFilterClickStats получает агрегаты статистики из кеша
func (r *cacheRepository) GetFilterClickStats(ctx context.Context) (*domain.FilterClickStats, error) {
	data, err := r.get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.FilterClickStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetFilterClickStats сохраняет агрегаты статистики в кеше
func (r *cacheRepository) SetFilterClickStats(ctx context.Context, stats *domain.FilterClickStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.set(ctx, statsKey, data, ttl)
}

func (r *cacheRepository) InvalidateFilterClickStats(ctx context.Context) error {
	return r.delete(ctx, statsKey)
}
