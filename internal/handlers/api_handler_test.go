package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kandmgawron/SpellTales/internal/config"
	"github.com/kandmgawron/SpellTales/internal/handlers"
	"github.com/kandmgawron/SpellTales/internal/repo"
	"github.com/kandmgawron/SpellTales/internal/service"
	"go.uber.org/zap"
)

// newTestServer поднимает полный стек: sqlite + сервисы + роутер.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := repo.InitDB("")
	require.NoError(t, err)
	// общий in-memory файл переживает тесты — чистим таблицы
	db.Exec("DELETE FROM stories")
	db.Exec("DELETE FROM users")

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	userSvc := service.NewUserService(repo.NewUserRepository(db))
	storySvc := service.NewStoryService(repo.NewStoryRepository(db), logger)

	h := handlers.NewHandler(userSvc, storySvc, logger, cfg)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, token string, payload map[string]any) map[string]any {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAPI_RegisterLoginVerify(t *testing.T) {
	ts := newTestServer(t)

	out := post(t, ts.URL, "", map[string]any{
		"action": "register", "userEmail": "mom@example.com", "password": "secret",
	})
	assert.Equal(t, true, out["success"])
	assert.NotEmpty(t, out["accessToken"])

	// повторная регистрация — отказ
	out = post(t, ts.URL, "", map[string]any{
		"action": "register", "userEmail": "mom@example.com", "password": "other",
	})
	assert.Equal(t, false, out["success"])

	out = post(t, ts.URL, "", map[string]any{
		"action": "login", "userEmail": "mom@example.com", "password": "secret",
	})
	assert.Equal(t, true, out["success"])

	out = post(t, ts.URL, "", map[string]any{
		"action": "login", "userEmail": "mom@example.com", "password": "wrong",
	})
	assert.Equal(t, false, out["success"])

	out = post(t, ts.URL, "", map[string]any{
		"action": "verify_password", "userEmail": "mom@example.com", "password": "secret",
	})
	assert.Equal(t, true, out["success"])
}

func TestAPI_StoryLifecycle(t *testing.T) {
	ts := newTestServer(t)

	out := post(t, ts.URL, "", map[string]any{
		"action": "register", "userEmail": "dad@example.com", "password": "pw",
	})
	token, _ := out["accessToken"].(string)
	require.NotEmpty(t, token)

	// генерация (без action) — история сохраняется на сервере
	out = post(t, ts.URL, token, map[string]any{
		"genre": "magic", "character1": "princess", "keyword1": "wand",
		"userEmail": "dad@example.com", "ageRating": "children",
	})
	story, _ := out["story"].(string)
	storyID, _ := out["story_id"].(string)
	assert.Contains(t, story, "princess")
	require.NotEmpty(t, storyID)

	// список
	out = post(t, ts.URL, token, map[string]any{
		"action": "get_user_stories", "userEmail": "dad@example.com",
	})
	require.Equal(t, true, out["success"])
	stories, _ := out["stories"].([]any)
	require.Len(t, stories, 1)
	first, _ := stories[0].(map[string]any)
	assert.Equal(t, storyID, first["story_id"])
	assert.Equal(t, "children", first["age_rating"])

	// без токена список недоступен
	out = post(t, ts.URL, "", map[string]any{
		"action": "get_user_stories", "userEmail": "dad@example.com",
	})
	assert.Equal(t, false, out["success"])

	// удаление
	out = post(t, ts.URL, token, map[string]any{
		"action": "delete_story", "userEmail": "dad@example.com", "storyId": storyID,
	})
	assert.Equal(t, true, out["success"])

	// повторное удаление — уже нет
	out = post(t, ts.URL, token, map[string]any{
		"action": "delete_story", "userEmail": "dad@example.com", "storyId": storyID,
	})
	assert.Equal(t, false, out["success"])

	// clear после новой генерации
	_ = post(t, ts.URL, token, map[string]any{
		"genre": "animals", "character1": "fox", "userEmail": "dad@example.com",
	})
	out = post(t, ts.URL, token, map[string]any{
		"action": "clear_user_stories", "userEmail": "dad@example.com",
	})
	assert.Equal(t, true, out["success"])

	out = post(t, ts.URL, token, map[string]any{
		"action": "get_user_stories", "userEmail": "dad@example.com",
	})
	assert.Equal(t, true, out["success"])
	stories, _ = out["stories"].([]any)
	assert.Len(t, stories, 0)
}

func TestAPI_AnonymousGeneration(t *testing.T) {
	ts := newTestServer(t)

	// гость получает историю, но без серверной копии
	out := post(t, ts.URL, "", map[string]any{
		"genre": "adventure", "character1": "knight",
	})
	assert.NotEmpty(t, out["story"])
	assert.Empty(t, out["story_id"])
}

func TestAPI_WordsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	out := post(t, ts.URL, "", map[string]any{
		"action": "register", "userEmail": "kid@example.com", "password": "pw",
	})
	token, _ := out["accessToken"].(string)
	require.NotEmpty(t, token)

	out = post(t, ts.URL, token, map[string]any{
		"action": "update_user_words", "userEmail": "kid@example.com", "words": []string{"cat", "dog"},
	})
	assert.Equal(t, true, out["success"])

	out = post(t, ts.URL, token, map[string]any{
		"action": "get_user_words", "userEmail": "kid@example.com",
	})
	require.Equal(t, true, out["success"])
	words, _ := out["words"].([]any)
	assert.Equal(t, []any{"cat", "dog"}, words)
}

func TestAPI_UnknownAction(t *testing.T) {
	ts := newTestServer(t)
	out := post(t, ts.URL, "", map[string]any{"action": "frobnicate"})
	assert.Equal(t, false, out["success"])
}
