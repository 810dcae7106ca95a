package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/public-garden-api/internal/config"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewGeocodingClient создает новый клиент для Google Maps Geocoding API
func NewGeocodingClient(cfg *config.GoogleMapsConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// ReverseGeocode возвращает город и полный адрес по координатам
func (c *client) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeocodeResult, error) {
	reqURL := fmt.Sprintf("%s/maps/api/geocode/json?latlng=%s&key=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", lat, lng)),
		url.QueryEscape(c.apiKey),
	)

	c.logger.Debug("Calling Google Maps Geocoding API",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoding API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if geoResp.Status != "OK" {
		c.logger.Error("Geocoding API returned non-OK status",
			zap.String("status", geoResp.Status))
		return nil, fmt.Errorf("geocoding API returned status: %s", geoResp.Status)
	}

	if len(geoResp.Results) == 0 {
		return nil, fmt.Errorf("geocoding API returned no results")
	}

	result := &domain.GeocodeResult{
		Address: geoResp.Results[0].FormattedAddress,
	}

	// Город берём из компонента locality первого результата
	for _, component := range geoResp.Results[0].AddressComponents {
		for _, t := range component.Types {
			if t == "locality" {
				result.City = component.LongName
				break
			}
		}
		if result.City != "" {
			break
		}
	}

	c.logger.Debug("Geocoding API call successful",
		zap.String("city", result.City),
		zap.String("address", result.Address))

	return result, nil
}
