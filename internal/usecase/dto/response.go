package dto

import "github.com/public-garden-api/internal/domain"

// RegisterResponse - ответ на успешную регистрацию
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	IsAdmin   bool   `json:"isAdmin"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// CheckAdminResponse - подтверждение валидности токена
type CheckAdminResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Email   string `json:"email"`
}

// KidsCountResponse - ответ на обновление счётчика детей
type KidsCountResponse struct {
	Message string         `json:"message"`
	Garden  *domain.Garden `json:"garden"`
}

// DeleteGardenResponse - ответ на удаление сада
type DeleteGardenResponse struct {
	Message         string `json:"message"`
	DeletedGardenID string `json:"deletedGardenId"`
}

// ClickLoggedResponse - подтверждение записи клика
type ClickLoggedResponse struct {
	Message string `json:"message"`
}

// InsightResponse - сгенерированный текст
type InsightResponse struct {
	Insight string `json:"insight"`
}

// ConfigResponse - публичная конфигурация для клиента
type ConfigResponse struct {
	GoogleMapsAPIKey string `json:"googleMapsApiKey"`
}
