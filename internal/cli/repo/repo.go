package repo

import "github.com/kandmgawron/SpellTales/internal/cli/model"

// Store — контракт локального хранилища устройства. Хранилище ёмкостно-
// агностично: лимит в 50 записей обеспечивает оркестратор, а не стор.
// Каждая запись коллекции переписывается целиком: частичных обновлений нет.
type Store interface {
	// ListStories возвращает локальную коллекцию, новые записи первыми.
	// Запись с идентификатором устаревшего формата сбрасывает ВСЮ коллекцию
	// в пустую (грубая миграция, сохранена намеренно).
	ListStories() ([]model.StoryRecord, error)
	// ReplaceStories перезаписывает коллекцию целиком.
	ReplaceStories(records []model.StoryRecord) error

	Profiles() ([]model.Profile, error)
	SaveProfiles(profiles []model.Profile) error
	ActiveProfile() (*model.Profile, error)
	SetActiveProfile(p *model.Profile) error

	GlobalAgeRating() (string, error)
	SetGlobalAgeRating(rating string) error

	CachedWords() ([]string, error)
	SaveCachedWords(words []string) error

	LastStory() (string, error)
	SaveLastStory(text string) error

	Close() error
}
