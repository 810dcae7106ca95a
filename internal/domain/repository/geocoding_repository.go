package repository

import (
	"context"

	"github.com/public-garden-api/internal/domain"
)

// GeocodingRepository - внешний сервис обратного геокодирования
type GeocodingRepository interface {
	// ReverseGeocode возвращает город и полный адрес для координат.
	// City может быть пустым, если населённый пункт не определён.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeocodeResult, error)
}
