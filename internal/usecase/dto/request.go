package dto

// RegisterRequest - запрос на регистрацию администратора
type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	SecretCode string `json:"secretCode" validate:"required"`
}

// LoginRequest - запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateGardenRequest - публичный запрос на добавление сада.
// Координаты обязательны, всё остальное опционально.
type CreateGardenRequest struct {
	Latitude            *float64 `json:"latitude" validate:"required"`
	Longitude           *float64 `json:"longitude" validate:"required"`
	CustomName          string   `json:"customName"`
	HasWaterTap         bool     `json:"hasWaterTap"`
	HasSlide            bool     `json:"hasSlide"`
	HasCarrousel        bool     `json:"hasCarrousel"`
	HasSwings           bool     `json:"hasSwings"`
	HasSpringHorse      bool     `json:"hasSpringHorse"`
	HasPublicBooksShelf bool     `json:"hasPublicBooksShelf"`
	HasPingPongTable    bool     `json:"hasPingPongTable"`
	HasPublicGym        bool     `json:"hasPublicGym"`
	HasBasketballField  bool     `json:"hasBasketballField"`
	HasFootballField    bool     `json:"hasFootballField"`
	HasSpaceForDogs     bool     `json:"hasSpaceForDogs"`
	KidsCount           *int     `json:"kidsCount"`
}

// UpdateGardenRequest - частичное обновление сада администратором.
// Указатели отличают отсутствующее поле от нулевого значения,
// пишутся только присутствующие в теле поля.
type UpdateGardenRequest struct {
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	CustomName          *string  `json:"customName"`
	City                *string  `json:"city"`
	Address             *string  `json:"address"`
	HasWaterTap         *bool    `json:"hasWaterTap"`
	HasSlide            *bool    `json:"hasSlide"`
	HasCarrousel        *bool    `json:"hasCarrousel"`
	HasSwings           *bool    `json:"hasSwings"`
	HasSpringHorse      *bool    `json:"hasSpringHorse"`
	HasPublicBooksShelf *bool    `json:"hasPublicBooksShelf"`
	HasPingPongTable    *bool    `json:"hasPingPongTable"`
	HasPublicGym        *bool    `json:"hasPublicGym"`
	HasBasketballField  *bool    `json:"hasBasketballField"`
	HasFootballField    *bool    `json:"hasFootballField"`
	HasSpaceForDogs     *bool    `json:"hasSpaceForDogs"`
	KidsCount           *int     `json:"kidsCount"`
}

// UpdateKidsCountRequest - публичное обновление счётчика детей
type UpdateKidsCountRequest struct {
	KidsCount *int `json:"kidsCount"`
}

// FilterClickRequest - событие клика по фильтру
type FilterClickRequest struct {
	FilterName string `json:"filterName" validate:"required"`
}

// InsightRequest - запрос на генерацию текста
type InsightRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}
