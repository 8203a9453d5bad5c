package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// FilterByProfile возвращает срез коллекции для профиля.
// profileID == nil — вид «все профили»: возвращается всё без фильтра.
func FilterByProfile(records []model.StoryRecord, profileID *string) []model.StoryRecord {
	if profileID == nil {
		return records
	}
	var out []model.StoryRecord
	for _, r := range records {
		if r.ProfileID == *profileID {
			out = append(out, r)
		}
	}
	return out
}

// FilterGlobalOnly возвращает записи, созданные вне какого-либо профиля.
func FilterGlobalOnly(records []model.StoryRecord) []model.StoryRecord {
	var out []model.StoryRecord
	for _, r := range records {
		if r.ProfileID == "" {
			out = append(out, r)
		}
	}
	return out
}

// ErrProfileNotFound — профиль с указанным именем или id не найден.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService управляет детскими профилями аккаунта.
type ProfileService struct {
	store repo.Store
}

// NewProfileService создаёт сервис поверх локального хранилища.
func NewProfileService(store repo.Store) *ProfileService {
	return &ProfileService{store: store}
}

// List возвращает все профили.
func (s *ProfileService) List() ([]model.Profile, error) {
	return s.store.Profiles()
}

// Add создаёт профиль. Имя должно быть непустым и уникальным без учёта
// регистра; рейтинг — одним из поддерживаемых.
func (s *ProfileService) Add(name, ageRating string) (*model.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name is required")
	}
	if !model.ValidAgeRating(ageRating) {
		return nil, fmt.Errorf("unknown age rating %q (expected one of %s)",
			ageRating, strings.Join(model.AgeRatings, ", "))
	}
	profiles, err := s.store.Profiles()
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("profile %q already exists", name)
		}
	}
	p := model.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		AgeRating: ageRating,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	profiles = append(profiles, p)
	if err := s.store.SaveProfiles(profiles); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByName ищет профиль по имени без учёта регистра.
func (s *ProfileService) FindByName(name string) (*model.Profile, error) {
	profiles, err := s.store.Profiles()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, name) {
			return &profiles[i], nil
		}
	}
	return nil, ErrProfileNotFound
}

// Use делает профиль активным; пустое имя снимает выбор (вид «все профили»).
func (s *ProfileService) Use(name string) (*model.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, s.store.SetActiveProfile(nil)
	}
	p, err := s.FindByName(name)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetActiveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Remove удаляет профиль. Если он был активным, выбор снимается.
// Записи профиля остаются в коллекции: они продолжают нести profileId
// и видны в виде «все профили».
func (s *ProfileService) Remove(name string) error {
	profiles, err := s.store.Profiles()
	if err != nil {
		return err
	}
	idx := -1
	for i, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProfileNotFound
	}
	removed := profiles[idx]
	profiles = append(profiles[:idx], profiles[idx+1:]...)
	if err := s.store.SaveProfiles(profiles); err != nil {
		return err
	}
	active, err := s.store.ActiveProfile()
	if err != nil {
		return err
	}
	if active != nil && active.ID == removed.ID {
		return s.store.SetActiveProfile(nil)
	}
	return nil
}

// Active возвращает активный профиль или nil.
func (s *ProfileService) Active() (*model.Profile, error) {
	return s.store.ActiveProfile()
}

// EffectiveAgeRating возвращает рейтинг для генерации: рейтинг активного
// профиля, иначе общий рейтинг аккаунта, иначе самый строгий уровень.
func (s *ProfileService) EffectiveAgeRating() (string, error) {
	active, err := s.store.ActiveProfile()
	if err != nil {
		return "", err
	}
	if active != nil && model.ValidAgeRating(active.AgeRating) {
		return active.AgeRating, nil
	}
	global, err := s.store.GlobalAgeRating()
	if err != nil {
		return "", err
	}
	if model.ValidAgeRating(global) {
		return global, nil
	}
	return model.AgeToddlers, nil
}
