package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"go.uber.org/zap"
)

// StatsUseCase обрабатывает журнал кликов по фильтрам и его агрегаты
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// RecordClick добавляет событие клика в журнал
func (uc *StatsUseCase) RecordClick(ctx context.Context, filterName string) error {
	if strings.TrimSpace(filterName) == "" {
		return errors.ErrMissingFilterName
	}

	if err := uc.statsRepo.InsertClick(ctx, filterName, time.Now()); err != nil {
		return err
	}

	uc.logger.Debug("Filter click recorded", zap.String("filter_name", filterName))

	if uc.cacheTTL > 0 {
		if err := uc.cacheRepo.InvalidateFilterClickStats(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
		}
	}

	return nil
}

// GetFilterClickStats возвращает агрегаты по трём скользящим окнам:
// сутки, неделя и месяц от текущего момента
func (uc *StatsUseCase) GetFilterClickStats(ctx context.Context) (*domain.FilterClickStats, error) {
	if uc.cacheTTL > 0 {
		cached, err := uc.cacheRepo.GetFilterClickStats(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Filter click stats fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		}
	}

	now := time.Now()

	lastDay, err := uc.statsRepo.CountByFilterSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	lastWeek, err := uc.statsRepo.CountByFilterSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}

	lastMonth, err := uc.statsRepo.CountByFilterSince(ctx, now.Add(-30*24*time.Hour))
	if err != nil {
		return nil, err
	}

	stats := &domain.FilterClickStats{
		LastDay:   lastDay,
		LastWeek:  lastWeek,
		LastMonth: lastMonth,
	}

	if uc.cacheTTL > 0 {
		if err := uc.cacheRepo.SetFilterClickStats(ctx, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
