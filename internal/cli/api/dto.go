package api

import (
	"time"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
)

// storyDTO — серверное представление записи (snake_case-поля бэкенда).
// Переводится во внутреннюю модель на границе и обратно.
type storyDTO struct {
	StoryID     string `json:"story_id"`
	Timestamp   string `json:"timestamp"` // RFC3339
	Content     string `json:"story_content"`
	Status      string `json:"status,omitempty"`
	FailureType string `json:"failure_type,omitempty"`
	Genre       string `json:"genre"`
	Character1  string `json:"character1"`
	Character2  string `json:"character2"`
	Keyword1    string `json:"keyword1"`
	Keyword2    string `json:"keyword2,omitempty"`
	Keyword3    string `json:"keyword3,omitempty"`
	AgeRating   string `json:"age_rating"`
	ProfileID   string `json:"profile_id,omitempty"`
	ProfileName string `json:"profile_name,omitempty"`
}

func (d storyDTO) toRecord() model.StoryRecord {
	rec := model.StoryRecord{
		ID:      d.StoryID,
		Content: d.Content,
		Status:  model.Status(d.Status),
		StoryParams: model.StoryParams{
			Genre:      d.Genre,
			Character1: d.Character1,
			Character2: d.Character2,
			Keyword1:   d.Keyword1,
			Keyword2:   d.Keyword2,
			Keyword3:   d.Keyword3,
			AgeRating:  d.AgeRating,
		},
		ProfileID:   d.ProfileID,
		ProfileName: d.ProfileName,
	}
	// отсутствие статуса в старых серверных записях трактуем как успех
	if rec.Status == "" {
		rec.Status = model.StatusSuccess
	}
	if rec.Status == model.StatusFailed {
		rec.FailureKind = model.FailureKind(d.FailureType)
	}
	if ts, err := time.Parse(time.RFC3339, d.Timestamp); err == nil {
		rec.Timestamp = ts.UnixMilli()
	}
	return rec
}
