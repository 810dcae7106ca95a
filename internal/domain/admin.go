package domain

import "time"

// Admin - учётная запись администратора. Все записи этой коллекции имеют
// права администратора, не-админского варианта схема не предусматривает.
type Admin struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
