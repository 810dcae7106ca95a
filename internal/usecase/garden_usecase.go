package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/pkg/utils"
	"github.com/public-garden-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// GardenUseCase обрабатывает бизнес-логику каталога садов
type GardenUseCase struct {
	gardenRepo    repository.GardenRepository
	geocodingRepo repository.GeocodingRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	cacheTTL      time.Duration
}

func NewGardenUseCase(
	gardenRepo repository.GardenRepository,
	geocodingRepo repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GardenUseCase {
	return &GardenUseCase{
		gardenRepo:    gardenRepo,
		geocodingRepo: geocodingRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// List возвращает все сады, используя кеш когда возможно
func (uc *GardenUseCase) List(ctx context.Context) ([]*domain.Garden, error) {
	if uc.cacheTTL > 0 {
		cached, err := uc.cacheRepo.GetGardens(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Gardens fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get gardens from cache", zap.Error(err))
		}
	}

	gardens, err := uc.gardenRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cacheTTL > 0 {
		if err := uc.cacheRepo.SetGardens(ctx, gardens, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache gardens", zap.Error(err))
		}
	}

	return gardens, nil
}

func (uc *GardenUseCase) GetByID(ctx context.Context, id string) (*domain.Garden, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrGardenNotFound
	}

	return uc.gardenRepo.GetByID(ctx, id)
}

// Create добавляет новый сад. Создание публичное: подать запись может кто
// угодно. Падение геокодера не фатально - запись создаётся с плейсхолдерами.
func (uc *GardenUseCase) Create(ctx context.Context, req dto.CreateGardenRequest) (*domain.Garden, error) {
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	kidsCount := 0
	if req.KidsCount != nil {
		if *req.KidsCount < 0 {
			return nil, errors.ErrInvalidKidsCount
		}
		kidsCount = *req.KidsCount
	}

	city := domain.UnknownCity
	address := domain.UnknownAddress

	geo, err := uc.geocodingRepo.ReverseGeocode(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed",
			zap.Float64("lat", *req.Latitude),
			zap.Float64("lng", *req.Longitude),
			zap.Error(err))
	} else {
		if geo.Address != "" {
			address = geo.Address
		}
		if geo.City != "" {
			city = geo.City
		}
	}

	garden := &domain.Garden{
		ID:                   uuid.NewString(),
		Latitude:             *req.Latitude,
		Longitude:            *req.Longitude,
		CustomName:           req.CustomName,
		City:                 city,
		Address:              address,
		HasWaterTap:          req.HasWaterTap,
		HasSlide:             req.HasSlide,
		HasCarrousel:         req.HasCarrousel,
		HasSwings:            req.HasSwings,
		HasSpringHorse:       req.HasSpringHorse,
		HasPublicBooksShelf:  req.HasPublicBooksShelf,
		HasPingPongTable:     req.HasPingPongTable,
		HasPublicGym:         req.HasPublicGym,
		HasBasketballField:   req.HasBasketballField,
		HasFootballField:     req.HasFootballField,
		HasSpaceForDogs:      req.HasSpaceForDogs,
		KidsCount:            kidsCount,
		KidsCountLastUpdated: time.Now(),
	}

	if err := uc.gardenRepo.Create(ctx, garden); err != nil {
		return nil, err
	}

	uc.logger.Info("Garden created",
		zap.String("garden_id", garden.ID),
		zap.String("city", garden.City))

	uc.invalidateListCache(ctx)

	return garden, nil
}

// UpdateKidsCount обновляет только счётчик детей. Запрос публичный,
// отрицательные и отсутствующие значения отклоняются без записи.
func (uc *GardenUseCase) UpdateKidsCount(ctx context.Context, id string, kidsCount *int) (*domain.Garden, error) {
	if kidsCount == nil || *kidsCount < 0 {
		return nil, errors.ErrInvalidKidsCount
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrGardenNotFound
	}

	garden, err := uc.gardenRepo.UpdateKidsCount(ctx, id, *kidsCount, time.Now())
	if err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)

	return garden, nil
}

// Update применяет частичное обновление от администратора: пишутся только
// присутствующие в запросе поля.
func (uc *GardenUseCase) Update(
	ctx context.Context,
	id string,
	req dto.UpdateGardenRequest,
	actorEmail string,
) (*domain.Garden, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrGardenNotFound
	}

	if req.Latitude != nil || req.Longitude != nil {
		lat, lng := 0.0, 0.0
		if req.Latitude != nil {
			lat = *req.Latitude
		}
		if req.Longitude != nil {
			lng = *req.Longitude
		}
		if !utils.ValidateCoordinates(lat, lng) {
			return nil, errors.ErrInvalidCoordinates
		}
	}

	if req.KidsCount != nil && *req.KidsCount < 0 {
		return nil, errors.ErrInvalidKidsCount
	}

	fields := make(map[string]interface{})
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}
	if req.CustomName != nil {
		fields["custom_name"] = *req.CustomName
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.HasWaterTap != nil {
		fields["has_water_tap"] = *req.HasWaterTap
	}
	if req.HasSlide != nil {
		fields["has_slide"] = *req.HasSlide
	}
	if req.HasCarrousel != nil {
		fields["has_carrousel"] = *req.HasCarrousel
	}
	if req.HasSwings != nil {
		fields["has_swings"] = *req.HasSwings
	}
	if req.HasSpringHorse != nil {
		fields["has_spring_horse"] = *req.HasSpringHorse
	}
	if req.HasPublicBooksShelf != nil {
		fields["has_public_books_shelf"] = *req.HasPublicBooksShelf
	}
	if req.HasPingPongTable != nil {
		fields["has_ping_pong_table"] = *req.HasPingPongTable
	}
	if req.HasPublicGym != nil {
		fields["has_public_gym"] = *req.HasPublicGym
	}
	if req.HasBasketballField != nil {
		fields["has_basketball_field"] = *req.HasBasketballField
	}
	if req.HasFootballField != nil {
		fields["has_football_field"] = *req.HasFootballField
	}
	if req.HasSpaceForDogs != nil {
		fields["has_space_for_dogs"] = *req.HasSpaceForDogs
	}
	if req.KidsCount != nil {
		fields["kids_count"] = *req.KidsCount
	}

	// Любая правка администратора обновляет штамп счётчика, даже если сам
	// счётчик не менялся. Поведение сознательно сохранено, см. DESIGN.md.
	fields["kids_count_last_updated"] = time.Now()

	garden, err := uc.gardenRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Garden updated by admin",
		zap.String("garden_id", id),
		zap.String("admin_email", actorEmail))

	uc.invalidateListCache(ctx)

	return garden, nil
}

// Delete удаляет сад. Доступно только администратору.
func (uc *GardenUseCase) Delete(ctx context.Context, id string, actorEmail string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrGardenNotFound
	}

	if err := uc.gardenRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Garden deleted by admin",
		zap.String("garden_id", id),
		zap.String("admin_email", actorEmail))

	uc.invalidateListCache(ctx)

	return nil
}

func (uc *GardenUseCase) invalidateListCache(ctx context.Context) {
	if uc.cacheTTL <= 0 {
		return
	}
	if err := uc.cacheRepo.InvalidateGardens(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate gardens cache", zap.Error(err))
	}
}
