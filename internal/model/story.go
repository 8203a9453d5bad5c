package model

import "time"

// Story — серверная копия сохранённой истории пользователя.
type Story struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Момент создания в миллисекундах эпохи, как на устройстве.
	Timestamp int64 `gorm:"not null"`

	Content     string `gorm:"type:text;not null"`
	Status      string `gorm:"not null;default:'success'"`
	FailureType string

	Genre      string
	Character1 string
	Character2 string
	Keyword1   string
	Keyword2   string
	Keyword3   string
	AgeRating  string

	ProfileID   string
	ProfileName string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
