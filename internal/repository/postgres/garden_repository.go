package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"go.uber.org/zap"
)

const gardenColumns = `
	id, latitude, longitude, custom_name, city, address,
	has_water_tap, has_slide, has_carrousel, has_swings, has_spring_horse,
	has_public_books_shelf, has_ping_pong_table, has_public_gym,
	has_basketball_field, has_football_field, has_space_for_dogs,
	kids_count, kids_count_last_updated`

// Колонки, которые разрешено менять через частичное обновление
var updatableGardenColumns = []string{
	"latitude", "longitude", "custom_name", "city", "address",
	"has_water_tap", "has_slide", "has_carrousel", "has_swings",
	"has_spring_horse", "has_public_books_shelf", "has_ping_pong_table",
	"has_public_gym", "has_basketball_field", "has_football_field",
	"has_space_for_dogs", "kids_count", "kids_count_last_updated",
}

type gardenRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGardenRepository(db *DB) repository.GardenRepository {
	return &gardenRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGarden(row rowScanner) (*domain.Garden, error) {
	var g domain.Garden
	err := row.Scan(
		&g.ID, &g.Latitude, &g.Longitude, &g.CustomName, &g.City, &g.Address,
		&g.HasWaterTap, &g.HasSlide, &g.HasCarrousel, &g.HasSwings, &g.HasSpringHorse,
		&g.HasPublicBooksShelf, &g.HasPingPongTable, &g.HasPublicGym,
		&g.HasBasketballField, &g.HasFootballField, &g.HasSpaceForDogs,
		&g.KidsCount, &g.KidsCountLastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepository) List(ctx context.Context) ([]*domain.Garden, error) {
	query := fmt.Sprintf("SELECT %s FROM gardens", gardenColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list gardens", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	gardens := make([]*domain.Garden, 0)
	for rows.Next() {
		g, err := scanGarden(rows)
		if err != nil {
			r.logger.Error("Failed to scan garden", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		gardens = append(gardens, g)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Garden rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return gardens, nil
}

func (r *gardenRepository) GetByID(ctx context.Context, id string) (*domain.Garden, error) {
	query := fmt.Sprintf("SELECT %s FROM gardens WHERE id = $1", gardenColumns)

	g, err := scanGarden(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrGardenNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get garden by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return g, nil
}

func (r *gardenRepository) Create(ctx context.Context, garden *domain.Garden) error {
	query := `
		INSERT INTO gardens (
			id, latitude, longitude, custom_name, city, address,
			has_water_tap, has_slide, has_carrousel, has_swings, has_spring_horse,
			has_public_books_shelf, has_ping_pong_table, has_public_gym,
			has_basketball_field, has_football_field, has_space_for_dogs,
			kids_count, kids_count_last_updated
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	_, err := r.db.ExecContext(ctx, query,
		garden.ID, garden.Latitude, garden.Longitude, garden.CustomName,
		garden.City, garden.Address,
		garden.HasWaterTap, garden.HasSlide, garden.HasCarrousel, garden.HasSwings,
		garden.HasSpringHorse, garden.HasPublicBooksShelf, garden.HasPingPongTable,
		garden.HasPublicGym, garden.HasBasketballField, garden.HasFootballField,
		garden.HasSpaceForDogs, garden.KidsCount, garden.KidsCountLastUpdated,
	)
	if err != nil {
		r.logger.Error("Failed to insert garden", zap.String("id", garden.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *gardenRepository) UpdateKidsCount(
	ctx context.Context,
	id string,
	kidsCount int,
	updatedAt time.Time,
) (*domain.Garden, error) {
	query := fmt.Sprintf(`
		UPDATE gardens
		SET kids_count = $1, kids_count_last_updated = $2
		WHERE id = $3
		RETURNING %s`, gardenColumns)

	g, err := scanGarden(r.db.QueryRowContext(ctx, query, kidsCount, updatedAt, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrGardenNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update kids count", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return g, nil
}

func (r *gardenRepository) Update(
	ctx context.Context,
	id string,
	fields map[string]interface{},
) (*domain.Garden, error) {
	setParts := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	// Обходим фиксированный список колонок, чтобы порядок placeholder'ов
	// был детерминированным
	for _, col := range updatableGardenColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE gardens SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), gardenColumns,
	)

	g, err := scanGarden(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, errors.ErrGardenNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update garden", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return g, nil
}

func (r *gardenRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gardens WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete garden", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrGardenNotFound
	}

	return nil
}
