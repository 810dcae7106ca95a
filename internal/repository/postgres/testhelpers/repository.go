package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewGardenRepositoryForTest creates a garden repository with test database and logger
func NewGardenRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.GardenRepository {
	return postgres.NewGardenRepository(NewDBForTest(db, logger))
}

// NewAdminRepositoryForTest creates an admin repository with test database and logger
func NewAdminRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AdminRepository {
	return postgres.NewAdminRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger))
}
