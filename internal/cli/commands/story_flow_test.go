package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
)

var idRe = regexp.MustCompile(`Saved as ([0-9a-f-]{36})`)

// Полный гостевой цикл: generate → stories → story-show → story-delete.
func TestGuestStoryFlow(t *testing.T) {
	cfg := withTempConfig(t)
	buf := captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"story": "Once there was a brave knight and a dragon.",
		})
	}))
	defer ts.Close()

	cfg.ServerURL = ts.URL

	if err := (guestCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("guest: %v", err)
	}

	buf.Reset()
	err := (generateCmd{}).Run(context.Background(), cfg,
		[]string{"--genre", "adventure", "--char1", "knight", "--char2", "dragon"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "brave knight") {
		t.Fatalf("expected story text, got: %s", out)
	}
	if !strings.Contains(out, "(local only)") {
		t.Fatalf("guest story must be local only, got: %s", out)
	}
	m := idRe.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no story id in output: %s", out)
	}
	id := m[1]

	buf.Reset()
	if err := (storiesCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("stories: %v", err)
	}
	if !strings.Contains(buf.String(), id[:8]) {
		t.Fatalf("story not listed: %s", buf.String())
	}

	buf.Reset()
	if err := (storyShowCmd{}).Run(context.Background(), cfg, []string{id}); err != nil {
		t.Fatalf("story-show: %v", err)
	}
	if !strings.Contains(buf.String(), "adventure") {
		t.Fatalf("story-show missing genre: %s", buf.String())
	}

	// гость удаляет без пароля
	buf.Reset()
	if err := (storyDeleteCmd{}).Run(context.Background(), cfg, []string{id}); err != nil {
		t.Fatalf("story-delete: %v", err)
	}

	buf.Reset()
	if err := (storiesCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("stories after delete: %v", err)
	}
	if !strings.Contains(buf.String(), "No saved stories") {
		t.Fatalf("expected empty collection, got: %s", buf.String())
	}
}

// Профили: создание, выбор, генерация в профиле, фильтры.
func TestProfileScopedFlow(t *testing.T) {
	cfg := withTempConfig(t)
	buf := captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"story": "A tale for Alice."})
	}))
	defer ts.Close()

	cfg.ServerURL = ts.URL

	if err := (guestCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("guest: %v", err)
	}
	if err := (profileAddCmd{}).Run(context.Background(), cfg, []string{"Alice", "children"}); err != nil {
		t.Fatalf("profile-add: %v", err)
	}
	if err := (profileUseCmd{}).Run(context.Background(), cfg, []string{"Alice"}); err != nil {
		t.Fatalf("profile-use: %v", err)
	}

	if err := (generateCmd{}).Run(context.Background(), cfg,
		[]string{"--genre", "magic", "--char1", "alice"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// в виде профиля запись есть
	buf.Reset()
	if err := (storiesCmd{}).Run(context.Background(), cfg, []string{"--filter", "profile"}); err != nil {
		t.Fatalf("stories: %v", err)
	}
	if !strings.Contains(buf.String(), "Alice") {
		t.Fatalf("profile story not listed: %s", buf.String())
	}

	// глобальный фильтр её не видит
	buf.Reset()
	if err := (storiesCmd{}).Run(context.Background(), cfg, []string{"--filter", "global"}); err != nil {
		t.Fatalf("stories --filter global: %v", err)
	}
	if !strings.Contains(buf.String(), "No saved stories") {
		t.Fatalf("global filter must hide profile stories: %s", buf.String())
	}

	// удаление профиля не трогает записи
	if err := (profileDelCmd{}).Run(context.Background(), cfg, []string{"Alice"}); err != nil {
		t.Fatalf("profile-del: %v", err)
	}
	buf.Reset()
	if err := (storiesCmd{}).Run(context.Background(), cfg, []string{"--filter", "all"}); err != nil {
		t.Fatalf("stories --filter all: %v", err)
	}
	if strings.Contains(buf.String(), "No saved stories") {
		t.Fatalf("records must survive profile deletion: %s", buf.String())
	}
}
