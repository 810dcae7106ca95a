package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"go.uber.org/zap"
)

// SQLSTATE для нарушения уникального ограничения
const uniqueViolationCode = "23505"

type adminRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAdminRepository(db *DB) repository.AdminRepository {
	return &adminRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash,
		admin.IsAdmin, admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrAdminExists
		}
		r.logger.Error("Failed to insert admin", zap.String("email", admin.Email), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// isUniqueViolation распознаёт SQLSTATE 23505 для обоих драйверов:
// pgx в рантайме и lib/pq в интеграционных тестах
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}

	return false
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, is_admin, created_at
		FROM admins
		WHERE email = $1`

	var admin domain.Admin
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash,
		&admin.IsAdmin, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAdminNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get admin by email", zap.String("email", email), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &admin, nil
}
