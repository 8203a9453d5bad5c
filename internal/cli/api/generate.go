package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// UserProfile — учётные данные, которые бэкенд ожидает внутри запроса генерации.
type UserProfile struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// GenerateRequest — полный запрос генерации истории. В отличие от
// персистентных операций здесь нет поля action: эндпоинт генерации
// различает запросы по форме.
type GenerateRequest struct {
	Genre         string      `json:"genre"`
	Character1    string      `json:"character1"`
	Character2    string      `json:"character2"`
	Keyword1      string      `json:"keyword1"`
	Keyword2      string      `json:"keyword2"`
	Keyword3      string      `json:"keyword3"`
	UserProfile   UserProfile `json:"userProfile"`
	UserEmail     string      `json:"userEmail"`
	AgeRating     string      `json:"ageRating"`
	ProfileID     string      `json:"profileId,omitempty"`
	ProfileName   string      `json:"profileName,omitempty"`
	SpellingWords []string    `json:"spellingWords"`
}

// GenerateResponse — сырой ответ генерации. Текст истории может прийти в
// поле story, в body, либо в body как вложенный JSON-конверт.
type GenerateResponse struct {
	Story   string `json:"story,omitempty"`
	Body    string `json:"body,omitempty"`
	StoryID string `json:"story_id,omitempty"`
}

// Generate issues the generation request. The caller is expected to pass a
// context with the 30s deadline; a deadline error here is classified as a
// timeout outcome upstream.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	resp, body, err := PostJSON(ctx, c.cfg.ServerURL, req, c.token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API Error: %d", resp.StatusCode)
	}
	var gr GenerateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, err
	}
	return &gr, nil
}
