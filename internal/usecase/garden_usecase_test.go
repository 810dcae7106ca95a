package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
)

func newGardenUC(gardenRepo *MockGardenRepository, geoRepo *MockGeocodingRepository, cacheRepo *MockCacheRepository, ttl time.Duration) *usecase.GardenUseCase {
	return usecase.NewGardenUseCase(gardenRepo, geoRepo, cacheRepo, zap.NewNop(), ttl)
}

func TestGardenUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults kids count to zero and stamps the counter", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockGeo := &MockGeocodingRepository{}
		uc := newGardenUC(mockGarden, mockGeo, &MockCacheRepository{}, 0)

		mockGeo.On("ReverseGeocode", ctx, 41.3874, 2.1686).
			Return(&domain.GeocodeResult{City: "Barcelona", Address: "Carrer de Test, 1"}, nil)

		var created *domain.Garden
		mockGarden.On("Create", ctx, mock.AnythingOfType("*domain.Garden")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Garden)
			}).
			Return(nil)

		before := time.Now()
		garden, err := uc.Create(ctx, dto.CreateGardenRequest{
			Latitude:  ptrFloat64(41.3874),
			Longitude: ptrFloat64(2.1686),
			HasSlide:  true,
		})
		after := time.Now()

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 0, garden.KidsCount)
		assert.Equal(t, "Barcelona", garden.City)
		assert.Equal(t, "Carrer de Test, 1", garden.Address)
		assert.True(t, garden.HasSlide)
		assert.NotEmpty(t, garden.ID)
		assert.False(t, garden.KidsCountLastUpdated.Before(before))
		assert.False(t, garden.KidsCountLastUpdated.After(after))
	})

	t.Run("geocoding failure falls back to placeholders", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockGeo := &MockGeocodingRepository{}
		uc := newGardenUC(mockGarden, mockGeo, &MockCacheRepository{}, 0)

		mockGeo.On("ReverseGeocode", ctx, 41.3874, 2.1686).
			Return(nil, assert.AnError)
		mockGarden.On("Create", ctx, mock.AnythingOfType("*domain.Garden")).Return(nil)

		garden, err := uc.Create(ctx, dto.CreateGardenRequest{
			Latitude:  ptrFloat64(41.3874),
			Longitude: ptrFloat64(2.1686),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.UnknownCity, garden.City)
		assert.Equal(t, domain.UnknownAddress, garden.Address)
	})

	t.Run("negative kids count is rejected without a write", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockGeo := &MockGeocodingRepository{}
		uc := newGardenUC(mockGarden, mockGeo, &MockCacheRepository{}, 0)

		_, err := uc.Create(ctx, dto.CreateGardenRequest{
			Latitude:  ptrFloat64(41.3874),
			Longitude: ptrFloat64(2.1686),
			KidsCount: ptrInt(-1),
		})

		assert.Equal(t, errors.ErrInvalidKidsCount, err)
		mockGarden.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockGeo.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range coordinates are rejected", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.Create(ctx, dto.CreateGardenRequest{
			Latitude:  ptrFloat64(95.0),
			Longitude: ptrFloat64(2.1686),
		})

		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		mockGarden.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalidates the list cache", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockCache := &MockCacheRepository{}
		uc := newGardenUC(mockGarden, mockGeo, mockCache, time.Minute)

		mockGeo.On("ReverseGeocode", ctx, 41.3874, 2.1686).
			Return(&domain.GeocodeResult{City: "Barcelona", Address: "Somewhere"}, nil)
		mockGarden.On("Create", ctx, mock.AnythingOfType("*domain.Garden")).Return(nil)
		mockCache.On("InvalidateGardens", ctx).Return(nil)

		_, err := uc.Create(ctx, dto.CreateGardenRequest{
			Latitude:  ptrFloat64(41.3874),
			Longitude: ptrFloat64(2.1686),
		})

		require.NoError(t, err)
		mockCache.AssertCalled(t, "InvalidateGardens", ctx)
	})
}

func TestGardenUseCase_List(t *testing.T) {
	ctx := context.Background()

	gardens := []*domain.Garden{
		{ID: uuid.NewString(), City: "Barcelona"},
		{ID: uuid.NewString(), City: "Girona"},
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockCache := &MockCacheRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, mockCache, time.Minute)

		mockCache.On("GetGardens", ctx).Return(gardens, nil)

		result, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, gardens, result)
		mockGarden.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("cache miss reads the repository and fills the cache", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockCache := &MockCacheRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, mockCache, time.Minute)

		mockCache.On("GetGardens", ctx).Return(nil, nil)
		mockGarden.On("List", ctx).Return(gardens, nil)
		mockCache.On("SetGardens", ctx, gardens, time.Minute).Return(nil)

		result, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, gardens, result)
		mockCache.AssertCalled(t, "SetGardens", ctx, gardens, time.Minute)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockCache := &MockCacheRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, mockCache, time.Minute)

		mockCache.On("GetGardens", ctx).Return(nil, assert.AnError)
		mockGarden.On("List", ctx).Return(gardens, nil)
		mockCache.On("SetGardens", ctx, gardens, time.Minute).Return(assert.AnError)

		result, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, gardens, result)
	})
}

func TestGardenUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id maps to not found", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.GetByID(ctx, "not-a-uuid")

		assert.Equal(t, errors.ErrGardenNotFound, err)
		mockGarden.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		id := uuid.NewString()
		garden := &domain.Garden{ID: id}
		mockGarden.On("GetByID", ctx, id).Return(garden, nil)

		result, err := uc.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, garden, result)
	})
}

func TestGardenUseCase_UpdateKidsCount(t *testing.T) {
	ctx := context.Background()

	t.Run("missing value is rejected", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.UpdateKidsCount(ctx, uuid.NewString(), nil)

		assert.Equal(t, errors.ErrInvalidKidsCount, err)
		mockGarden.AssertNotCalled(t, "UpdateKidsCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative value is rejected without a write", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.UpdateKidsCount(ctx, uuid.NewString(), ptrInt(-5))

		assert.Equal(t, errors.ErrInvalidKidsCount, err)
		mockGarden.AssertNotCalled(t, "UpdateKidsCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success passes the new value and a fresh timestamp", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		id := uuid.NewString()
		updated := &domain.Garden{ID: id, KidsCount: 7}

		before := time.Now()
		mockGarden.On("UpdateKidsCount", ctx, id, 7, mock.MatchedBy(func(ts time.Time) bool {
			return !ts.Before(before) && !ts.After(time.Now())
		})).Return(updated, nil)

		result, err := uc.UpdateKidsCount(ctx, id, ptrInt(7))

		require.NoError(t, err)
		assert.Equal(t, 7, result.KidsCount)
	})
}

func TestGardenUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("writes only present fields and always stamps the counter", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		id := uuid.NewString()
		updated := &domain.Garden{ID: id}

		var fields map[string]interface{}
		mockGarden.On("Update", ctx, id, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				fields = args.Get(2).(map[string]interface{})
			}).
			Return(updated, nil)

		_, err := uc.Update(ctx, id, dto.UpdateGardenRequest{
			CustomName: ptrString("Renamed"),
			HasSwings:  ptrBool(true),
		}, "alice@example.com")

		require.NoError(t, err)
		require.NotNil(t, fields)
		assert.Equal(t, "Renamed", fields["custom_name"])
		assert.Equal(t, true, fields["has_swings"])
		assert.Contains(t, fields, "kids_count_last_updated")
		assert.Len(t, fields, 3)
	})

	t.Run("negative kids count is rejected", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.Update(ctx, uuid.NewString(), dto.UpdateGardenRequest{
			KidsCount: ptrInt(-3),
		}, "alice@example.com")

		assert.Equal(t, errors.ErrInvalidKidsCount, err)
		mockGarden.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range coordinates are rejected", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.Update(ctx, uuid.NewString(), dto.UpdateGardenRequest{
			Longitude: ptrFloat64(200.0),
		}, "alice@example.com")

		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		uc := newGardenUC(&MockGardenRepository{}, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		_, err := uc.Update(ctx, "42", dto.UpdateGardenRequest{}, "alice@example.com")

		assert.Equal(t, errors.ErrGardenNotFound, err)
	})
}

func TestGardenUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id maps to not found", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, &MockCacheRepository{}, 0)

		err := uc.Delete(ctx, "not-a-uuid", "alice@example.com")

		assert.Equal(t, errors.ErrGardenNotFound, err)
		mockGarden.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("success invalidates the list cache", func(t *testing.T) {
		mockGarden := &MockGardenRepository{}
		mockCache := &MockCacheRepository{}
		uc := newGardenUC(mockGarden, &MockGeocodingRepository{}, mockCache, time.Minute)

		id := uuid.NewString()
		mockGarden.On("Delete", ctx, id).Return(nil)
		mockCache.On("InvalidateGardens", ctx).Return(nil)

		err := uc.Delete(ctx, id, "alice@example.com")

		require.NoError(t, err)
		mockCache.AssertCalled(t, "InvalidateGardens", ctx)
	})
}
