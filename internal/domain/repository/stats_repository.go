package repository

import (
	"context"
	"time"

	"github.com/public-garden-api/internal/domain"
)

// StatsRepository - журнал кликов по фильтрам
type StatsRepository interface {
	InsertClick(ctx context.Context, filterName string, createdAt time.Time) error

	// CountByFilterSince группирует события начиная с since по имени фильтра
	// и сортирует по убыванию количества
	CountByFilterSince(ctx context.Context, since time.Time) ([]domain.FilterCount, error)
}
