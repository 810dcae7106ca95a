package repository

import (
	"context"
	"time"

	"github.com/public-garden-api/internal/domain"
)

// GardenRepository - доступ к хранилищу садов
type GardenRepository interface {
	// List возвращает все записи в порядке хранения, без фильтрации и пагинации
	List(ctx context.Context) ([]*domain.Garden, error)

	GetByID(ctx context.Context, id string) (*domain.Garden, error)

	Create(ctx context.Context, garden *domain.Garden) error

	// UpdateKidsCount обновляет только счётчик и штамп его обновления
	UpdateKidsCount(ctx context.Context, id string, kidsCount int, updatedAt time.Time) (*domain.Garden, error)

	// Update применяет частичное обновление: пишутся только переданные колонки
	Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Garden, error)

	Delete(ctx context.Context, id string) error
}
