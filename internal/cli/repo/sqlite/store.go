package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// Ключи локального KV-хранилища.
const (
	keySavedStories   = "savedStories"
	keyCurrentProfile = "currentProfile"
	keyChildProfiles  = "childProfiles"
	keyAgeRating      = "ageRating"
	keyCachedWords    = "cachedWords"
	keyLastStory      = "lastStory"
)

// Store — локальное KV-хранилище устройства (SQLite). Значения сериализуются
// в JSON; каждая запись перезаписывается целиком.
type Store struct {
	db    *sql.DB
	email string
}

var _ repo.Store = (*Store)(nil)

// OpenForUser открывает (и создаёт при необходимости) файл БД для указанного
// пользователя под каталогом base и возвращает стор. Вторым значением
// возвращается путь к БД. Пустой base — каталог конфигурации пользователя.
// Изоляция данных между аккаунтами — через отдельный файл на каждого.
func OpenForUser(base, email string) (*Store, string, error) {
	if email == "" {
		return nil, "", errors.New("empty email for user store")
	}
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "SpellTales", "users")
	}
	dir := filepath.Join(base, email)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "client.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &Store{db: db, email: email}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

func (s *Store) getRaw(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) setRaw(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) getJSON(key string, dst any) (bool, error) {
	raw, ok, err := s.getRaw(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// битое значение трактуем как отсутствующее
		return false, nil
	}
	return true, nil
}

func (s *Store) setJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.setRaw(key, string(b))
}

// ListStories возвращает локальную коллекцию, как она сохранена.
// Если хотя бы одна запись несёт идентификатор не-UUID формата, вся коллекция
// считается устаревшей и сбрасывается в пустую.
func (s *Store) ListStories() ([]model.StoryRecord, error) {
	var records []model.StoryRecord
	ok, err := s.getJSON(keySavedStories, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.StoryRecord{}, nil
	}
	for _, r := range records {
		if _, err := uuid.Parse(r.ID); err != nil {
			if err := s.setJSON(keySavedStories, []model.StoryRecord{}); err != nil {
				return nil, err
			}
			return []model.StoryRecord{}, nil
		}
	}
	return records, nil
}

// ReplaceStories перезаписывает коллекцию целиком.
func (s *Store) ReplaceStories(records []model.StoryRecord) error {
	if records == nil {
		records = []model.StoryRecord{}
	}
	return s.setJSON(keySavedStories, records)
}

// Profiles возвращает список детских профилей.
func (s *Store) Profiles() ([]model.Profile, error) {
	var profiles []model.Profile
	ok, err := s.getJSON(keyChildProfiles, &profiles)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Profile{}, nil
	}
	return profiles, nil
}

// SaveProfiles перезаписывает список профилей целиком.
func (s *Store) SaveProfiles(profiles []model.Profile) error {
	if profiles == nil {
		profiles = []model.Profile{}
	}
	return s.setJSON(keyChildProfiles, profiles)
}

// ActiveProfile возвращает активный профиль или nil, если он не выбран.
func (s *Store) ActiveProfile() (*model.Profile, error) {
	var p model.Profile
	ok, err := s.getJSON(keyCurrentProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	if p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

// SetActiveProfile сохраняет активный профиль; nil снимает выбор.
func (s *Store) SetActiveProfile(p *model.Profile) error {
	if p == nil {
		_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, keyCurrentProfile)
		return err
	}
	return s.setJSON(keyCurrentProfile, p)
}

// GlobalAgeRating возвращает общий возрастной рейтинг аккаунта ("" — не задан).
func (s *Store) GlobalAgeRating() (string, error) {
	raw, ok, err := s.getRaw(keyAgeRating)
	if err != nil || !ok {
		return "", err
	}
	var rating string
	if err := json.Unmarshal([]byte(raw), &rating); err != nil {
		return "", nil
	}
	return rating, nil
}

// SetGlobalAgeRating сохраняет общий возрастной рейтинг аккаунта.
func (s *Store) SetGlobalAgeRating(rating string) error {
	return s.setJSON(keyAgeRating, rating)
}

// CachedWords возвращает локальную копию списка слов.
func (s *Store) CachedWords() ([]string, error) {
	var words []string
	ok, err := s.getJSON(keyCachedWords, &words)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return words, nil
}

// SaveCachedWords перезаписывает локальную копию списка слов.
func (s *Store) SaveCachedWords(words []string) error {
	if words == nil {
		words = []string{}
	}
	return s.setJSON(keyCachedWords, words)
}

// LastStory возвращает текст последней успешной истории ("" — нет).
func (s *Store) LastStory() (string, error) {
	raw, ok, err := s.getRaw(keyLastStory)
	if err != nil || !ok {
		return "", err
	}
	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return "", nil
	}
	return text, nil
}

// SaveLastStory сохраняет текст последней успешной истории.
func (s *Store) SaveLastStory(text string) error {
	return s.setJSON(keyLastStory, text)
}
