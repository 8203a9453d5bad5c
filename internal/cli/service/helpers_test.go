package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// --- In-memory стор для тестов сервисов ---

type memStore struct {
	stories   []model.StoryRecord
	profiles  []model.Profile
	active    *model.Profile
	ageRating string
	words     []string
	lastStory string

	listErr    error
	replaceErr error
}

var _ repo.Store = (*memStore)(nil)

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) ListStories() ([]model.StoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.StoryRecord, len(m.stories))
	copy(out, m.stories)
	return out, nil
}

func (m *memStore) ReplaceStories(records []model.StoryRecord) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.stories = make([]model.StoryRecord, len(records))
	copy(m.stories, records)
	return nil
}

func (m *memStore) Profiles() ([]model.Profile, error) {
	out := make([]model.Profile, len(m.profiles))
	copy(out, m.profiles)
	return out, nil
}

func (m *memStore) SaveProfiles(profiles []model.Profile) error {
	m.profiles = make([]model.Profile, len(profiles))
	copy(m.profiles, profiles)
	return nil
}

func (m *memStore) ActiveProfile() (*model.Profile, error) {
	if m.active == nil {
		return nil, nil
	}
	p := *m.active
	return &p, nil
}

func (m *memStore) SetActiveProfile(p *model.Profile) error {
	if p == nil {
		m.active = nil
		return nil
	}
	cp := *p
	m.active = &cp
	return nil
}

func (m *memStore) GlobalAgeRating() (string, error)      { return m.ageRating, nil }
func (m *memStore) SetGlobalAgeRating(r string) error     { m.ageRating = r; return nil }
func (m *memStore) CachedWords() ([]string, error)        { return m.words, nil }
func (m *memStore) SaveCachedWords(words []string) error  { m.words = words; return nil }
func (m *memStore) LastStory() (string, error)            { return m.lastStory, nil }
func (m *memStore) SaveLastStory(text string) error       { m.lastStory = text; return nil }
func (m *memStore) Close() error                          { return nil }

// --- Мок удалённого зеркала ---

type mockRemote struct{ mock.Mock }

var _ RemoteStore = (*mockRemote)(nil)

func (m *mockRemote) FetchStories(ctx context.Context, email string) ([]model.StoryRecord, error) {
	args := m.Called(email)
	if v, ok := args.Get(0).([]model.StoryRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) DeleteStory(ctx context.Context, email, id string) bool {
	return m.Called(email, id).Bool(0)
}

func (m *mockRemote) ClearStories(ctx context.Context, email string) bool {
	return m.Called(email).Bool(0)
}
