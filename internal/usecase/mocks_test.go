package usecase_test

import (
	"context"
	"time"

	"github.com/public-garden-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockGardenRepository is a mock of GardenRepository
type MockGardenRepository struct {
	mock.Mock
}

func (m *MockGardenRepository) List(ctx context.Context) ([]*domain.Garden, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Garden), args.Error(1)
}

func (m *MockGardenRepository) GetByID(ctx context.Context, id string) (*domain.Garden, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func (m *MockGardenRepository) Create(ctx context.Context, garden *domain.Garden) error {
	args := m.Called(ctx, garden)
	return args.Error(0)
}

func (m *MockGardenRepository) UpdateKidsCount(ctx context.Context, id string, kidsCount int, updatedAt time.Time) (*domain.Garden, error) {
	args := m.Called(ctx, id, kidsCount, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func (m *MockGardenRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Garden, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func (m *MockGardenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdminRepository is a mock of AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) InsertClick(ctx context.Context, filterName string, createdAt time.Time) error {
	args := m.Called(ctx, filterName, createdAt)
	return args.Error(0)
}

func (m *MockStatsRepository) CountByFilterSince(ctx context.Context, since time.Time) ([]domain.FilterCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FilterCount), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetGardens(ctx context.Context) ([]*domain.Garden, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Garden), args.Error(1)
}

func (m *MockCacheRepository) SetGardens(ctx context.Context, gardens []*domain.Garden, ttl time.Duration) error {
	args := m.Called(ctx, gardens, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateGardens(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetFilterClickStats(ctx context.Context) (*domain.FilterClickStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterClickStats), args.Error(1)
}

func (m *MockCacheRepository) SetFilterClickStats(ctx context.Context, stats *domain.FilterClickStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateFilterClickStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockInsightRepository is a mock of InsightRepository
type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }
func ptrBool(v bool) *bool          { return &v }
