package repository

import (
	"context"

	"github.com/public-garden-api/internal/domain"
)

// AdminRepository - доступ к каталогу администраторов
type AdminRepository interface {
	// Create сохраняет новую учётную запись, возвращает ErrAdminExists
	// при дубликате email
	Create(ctx context.Context, admin *domain.Admin) error

	// GetByEmail возвращает ErrAdminNotFound если email не зарегистрирован
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
