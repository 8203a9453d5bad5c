package model

// Profile — именованный контекст (обычно профиль ребёнка), разделяющий
// сохранённые истории и настройки генерации.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AgeRating string `json:"ageRating"`
	CreatedAt string `json:"createdAt"` // RFC3339
}
