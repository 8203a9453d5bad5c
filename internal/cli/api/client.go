package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/config"
	"go.uber.org/zap"
)

// Client — тонкий адаптер над мультиплексным action-эндпоинтом бэкенда.
// Повторов запросов здесь нет: ретраи — ответственность вызывающего кода.
type Client struct {
	cfg   *config.Config
	token string
	log   *zap.SugaredLogger
}

// NewClient builds a client for the configured backend. token may be empty
// (guest mode) or the sentinel value for guests; it is attached to every call.
func NewClient(cfg *config.Config, token string, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{cfg: cfg, token: token, log: log}
}

type actionRequest struct {
	Action    string   `json:"action"`
	UserEmail string   `json:"userEmail"`
	StoryID   string   `json:"storyId,omitempty"`
	Password  string   `json:"password,omitempty"`
	Words     []string `json:"words,omitempty"`
}

type actionResponse struct {
	Success     bool       `json:"success"`
	Stories     []storyDTO `json:"stories,omitempty"`
	Words       []string   `json:"words,omitempty"`
	AccessToken string     `json:"accessToken,omitempty"`
	Error       string     `json:"error,omitempty"`
}

func (c *Client) call(ctx context.Context, req actionRequest) (*actionResponse, error) {
	resp, body, err := PostJSON(ctx, c.cfg.ServerURL, req, c.token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	var ar actionResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

// FetchStories returns every mirrored record for the user, translated to the
// internal shape. Transport failures surface as an error so the caller (the
// sync engine) can degrade to local-only.
func (c *Client) FetchStories(ctx context.Context, userEmail string) ([]model.StoryRecord, error) {
	ar, err := c.call(ctx, actionRequest{Action: "get_user_stories", UserEmail: userEmail})
	if err != nil {
		return nil, err
	}
	if !ar.Success {
		return nil, fmt.Errorf("get_user_stories rejected: %s", ar.Error)
	}
	records := make([]model.StoryRecord, 0, len(ar.Stories))
	for _, dto := range ar.Stories {
		records = append(records, dto.toRecord())
	}
	return records, nil
}

// DeleteStory removes one record from the remote mirror, best effort.
// Сбои транспорта не всплывают: возвращаем false и пишем в лог.
func (c *Client) DeleteStory(ctx context.Context, userEmail, storyID string) bool {
	ar, err := c.call(ctx, actionRequest{Action: "delete_story", UserEmail: userEmail, StoryID: storyID})
	if err != nil {
		c.log.Warnw("remote delete failed, record removed locally only", "storyId", storyID, "error", err)
		return false
	}
	return ar.Success
}

// ClearStories wipes the user's remote mirror, best effort.
func (c *Client) ClearStories(ctx context.Context, userEmail string) bool {
	ar, err := c.call(ctx, actionRequest{Action: "clear_user_stories", UserEmail: userEmail})
	if err != nil {
		c.log.Warnw("remote clear failed, collection cleared locally only", "error", err)
		return false
	}
	return ar.Success
}

// FetchWords loads the user's spelling-word list from the backend.
func (c *Client) FetchWords(ctx context.Context, userEmail string) ([]string, error) {
	ar, err := c.call(ctx, actionRequest{Action: "get_user_words", UserEmail: userEmail})
	if err != nil {
		return nil, err
	}
	if !ar.Success {
		return nil, fmt.Errorf("get_user_words rejected: %s", ar.Error)
	}
	return ar.Words, nil
}

// UpdateWords replaces the user's spelling-word list on the backend.
func (c *Client) UpdateWords(ctx context.Context, userEmail string, words []string) error {
	ar, err := c.call(ctx, actionRequest{Action: "update_user_words", UserEmail: userEmail, Words: words})
	if err != nil {
		return err
	}
	if !ar.Success {
		return fmt.Errorf("update_user_words rejected: %s", ar.Error)
	}
	return nil
}
