package model

import "time"

// User — серверная модель аккаунта родителя.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш

	// Список слов для практики правописания, JSON-массив строк.
	Words string `gorm:"type:text;default:'[]'"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
