package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// WordsRemote — удалённый источник списка слов для практики правописания.
type WordsRemote interface {
	FetchWords(ctx context.Context, email string) ([]string, error)
	UpdateWords(ctx context.Context, email string, words []string) error
}

// WordsService отдаёт список слов, переживающий отсутствие сети:
// успешная загрузка обновляет локальную копию, при сбое берётся копия.
type WordsService struct {
	store  repo.Store
	remote WordsRemote
	log    *zap.SugaredLogger

	email string
	guest bool
}

// NewWordsService создаёт сервис. Для гостя remote может быть nil.
func NewWordsService(store repo.Store, remote WordsRemote, email string, guest bool, log *zap.SugaredLogger) *WordsService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WordsService{store: store, remote: remote, email: email, guest: guest, log: log}
}

// Words возвращает актуальный список слов. Гость всегда получает локальную
// копию (у гостя она пуста до явного words-set).
func (s *WordsService) Words(ctx context.Context) ([]string, error) {
	if s.guest || s.remote == nil {
		return s.store.CachedWords()
	}
	words, err := s.remote.FetchWords(ctx, s.email)
	if err != nil {
		s.log.Warnw("words fetch failed, using cached copy", "error", err)
		return s.store.CachedWords()
	}
	if err := s.store.SaveCachedWords(words); err != nil {
		s.log.Warnw("caching words failed", "error", err)
	}
	return words, nil
}

// Update перезаписывает список слов: локальная копия обновляется всегда,
// удалённая — если есть сеть и не гость.
func (s *WordsService) Update(ctx context.Context, words []string) (PersistResult, error) {
	if err := s.store.SaveCachedWords(words); err != nil {
		return PersistedLocally, err
	}
	if s.guest || s.remote == nil {
		return PersistedLocally, nil
	}
	if err := s.remote.UpdateWords(ctx, s.email, words); err != nil {
		s.log.Warnw("remote words update failed, saved locally only", "error", err)
		return PersistedLocally, nil
	}
	return PersistedLocallyAndRemotely, nil
}
