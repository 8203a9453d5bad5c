package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&config.Config{ServerURL: serverURL}, "token-abc", nil)
}

func TestFetchStories_TranslatesDTO(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "get_user_stories", req["action"])
		assert.Equal(t, "user@example.com", req["userEmail"])
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"stories": []map[string]any{{
				"story_id":      "5e0b53cf-5a05-4e0c-9fbc-5f9c6317b87d",
				"timestamp":     time.UnixMilli(1700000000000).UTC().Format(time.RFC3339),
				"story_content": "Once upon a time…",
				"status":        "success",
				"genre":         "magic",
				"character1":    "princess",
				"character2":    "dragon",
				"keyword1":      "castle",
				"age_rating":    "children",
				"profile_id":    "p1",
				"profile_name":  "Alice",
			}},
		})
	}))
	defer ts.Close()

	records, err := newTestClient(ts.URL).FetchStories(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "5e0b53cf-5a05-4e0c-9fbc-5f9c6317b87d", rec.ID)
	assert.Equal(t, "Once upon a time…", rec.Content)
	assert.Equal(t, model.StatusSuccess, rec.Status)
	assert.Equal(t, "magic", rec.Genre)
	assert.Equal(t, "children", rec.AgeRating)
	assert.Equal(t, "p1", rec.ProfileID)
	assert.Equal(t, "Alice", rec.ProfileName)
	// RFC3339 хранит секунды — сравниваем с точностью до секунды
	assert.Equal(t, int64(1700000000000)/1000, rec.Timestamp/1000)
}

func TestFetchStories_MissingStatusMeansSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"stories": []map[string]any{{"story_id": "x", "story_content": "tale"}},
		})
	}))
	defer ts.Close()

	records, err := newTestClient(ts.URL).FetchStories(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, records[0].Status)
}

func TestFetchStories_FailedRecordKeepsFailureKind(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"stories": []map[string]any{{
				"story_id":      "x",
				"story_content": "Story generation was blocked by content filters. Please try different characters or keywords.",
				"status":        "failed",
				"failure_type":  "guardrail_block",
			}},
		})
	}))
	defer ts.Close()

	records, err := newTestClient(ts.URL).FetchStories(context.Background(), "u")
	require.NoError(t, err)
	assert.True(t, records[0].Failed())
	assert.Equal(t, model.FailureGuardrailBlock, records[0].FailureKind)
}

func TestDeleteStory_SoftFailure(t *testing.T) {
	// транспортная ошибка не должна всплывать — только false
	c := newTestClient("http://127.0.0.1:1") // закрытый порт
	ok := c.DeleteStory(context.Background(), "u", "id1")
	assert.False(t, ok)
}

func TestDeleteStory_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "delete_story", req["action"])
		assert.Equal(t, "id1", req["storyId"])
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer ts.Close()

	assert.True(t, newTestClient(ts.URL).DeleteStory(context.Background(), "u", "id1"))
}

func TestClearStories_SoftFailure(t *testing.T) {
	assert.False(t, newTestClient("http://127.0.0.1:1").ClearStories(context.Background(), "u"))
}

func TestFetchWords(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "words": []string{"cat", "dog"}})
	}))
	defer ts.Close()

	words, err := newTestClient(ts.URL).FetchWords(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)
}

func TestGenerate_DeadlinePropagates(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{"story": "late"})
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(slow.URL).Generate(ctx, GenerateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "bad password"})
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Login(context.Background(), "u", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
