package testhelpers

import (
	"time"

	"github.com/google/uuid"
	"github.com/public-garden-api/internal/domain"
)

// NewTestGarden builds a garden with valid coordinates and sensible defaults
func NewTestGarden() *domain.Garden {
	return &domain.Garden{
		ID:                   uuid.NewString(),
		Latitude:             41.3874,
		Longitude:            2.1686,
		CustomName:           "Test Garden",
		City:                 "Barcelona",
		Address:              "Carrer de Test, 1",
		HasSlide:             true,
		HasSwings:            true,
		KidsCount:            3,
		KidsCountLastUpdated: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// NewTestAdmin builds an admin row. The password hash is a bcrypt hash
// of the string "password".
func NewTestAdmin(email string) *domain.Admin {
	return &domain.Admin{
		ID:           uuid.NewString(),
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}
