package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) InsertClick(ctx context.Context, filterName string, createdAt time.Time) error {
	query := `INSERT INTO filter_clicks (filter_name, created_at) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, filterName, createdAt)
	if err != nil {
		r.logger.Error("Failed to insert filter click",
			zap.String("filter_name", filterName), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// CountByFilterSince сканирует журнал целиком от since, без инкрементальных
// счётчиков. На текущих объёмах это дешевле, чем поддерживать агрегаты.
func (r *statsRepository) CountByFilterSince(ctx context.Context, since time.Time) ([]domain.FilterCount, error) {
	query := `
		SELECT filter_name, COUNT(*) AS count
		FROM filter_clicks
		WHERE created_at >= $1
		GROUP BY filter_name
		ORDER BY count DESC`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to count filter clicks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := make([]domain.FilterCount, 0)
	for rows.Next() {
		var fc domain.FilterCount
		if err := rows.Scan(&fc.FilterName, &fc.Count); err != nil {
			r.logger.Error("Failed to scan filter count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts = append(counts, fc)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Filter count rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}
