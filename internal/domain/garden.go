package domain

import "time"

// Garden - запись об общественном саде (детской площадке) с координатами и
// флагами удобств. Создаётся публично, редактируется только администратором.
type Garden struct {
	ID                   string    `json:"id" db:"id"`
	Latitude             float64   `json:"latitude" db:"latitude"`
	Longitude            float64   `json:"longitude" db:"longitude"`
	CustomName           string    `json:"customName" db:"custom_name"`
	City                 string    `json:"city" db:"city"`
	Address              string    `json:"address" db:"address"`
	HasWaterTap          bool      `json:"hasWaterTap" db:"has_water_tap"`
	HasSlide             bool      `json:"hasSlide" db:"has_slide"`
	HasCarrousel         bool      `json:"hasCarrousel" db:"has_carrousel"`
	HasSwings            bool      `json:"hasSwings" db:"has_swings"`
	HasSpringHorse       bool      `json:"hasSpringHorse" db:"has_spring_horse"`
	HasPublicBooksShelf  bool      `json:"hasPublicBooksShelf" db:"has_public_books_shelf"`
	HasPingPongTable     bool      `json:"hasPingPongTable" db:"has_ping_pong_table"`
	HasPublicGym         bool      `json:"hasPublicGym" db:"has_public_gym"`
	HasBasketballField   bool      `json:"hasBasketballField" db:"has_basketball_field"`
	HasFootballField     bool      `json:"hasFootballField" db:"has_football_field"`
	HasSpaceForDogs      bool      `json:"hasSpaceForDogs" db:"has_space_for_dogs"`
	KidsCount            int       `json:"kidsCount" db:"kids_count"`
	KidsCountLastUpdated time.Time `json:"kidsCountLastUpdated" db:"kids_count_last_updated"`
}

// GeocodeResult - результат обратного геокодирования координат
type GeocodeResult struct {
	City    string
	Address string
}

// Плейсхолдеры для записей, которые не удалось геокодировать
const (
	UnknownCity    = "Unknown"
	UnknownAddress = "Address not found"
)
