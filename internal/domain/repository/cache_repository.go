package repository

import (
	"context"
	"time"

	"github.com/public-garden-api/internal/domain"
)

// CacheRepository - кеш списка садов и агрегатов статистики.
// Промах кеша возвращает (nil, nil).
type CacheRepository interface {
	GetGardens(ctx context.Context) ([]*domain.Garden, error)
	SetGardens(ctx context.Context, gardens []*domain.Garden, ttl time.Duration) error
	InvalidateGardens(ctx context.Context) error

	GetFilterClickStats(ctx context.Context) (*domain.FilterClickStats, error)
	SetFilterClickStats(ctx context.Context, stats *domain.FilterClickStats, ttl time.Duration) error
	InvalidateFilterClickStats(ctx context.Context) error
}
