package service

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// MaxSavedStories — верхний предел локальной коллекции, новые записи первыми.
const MaxSavedStories = 50

// PersistResult сообщает вызывающему, докуда дошла запись.
type PersistResult int

const (
	// PersistedLocally — запись есть локально; зеркалирование не удалось
	// или не выполнялось (гость, офлайн).
	PersistedLocally PersistResult = iota
	// PersistedLocallyAndRemotely — запись есть локально и подтверждена удалённо.
	PersistedLocallyAndRemotely
)

// RemoteStore — удалённое зеркало коллекции. Delete и Clear сигнализируют
// успех булевым значением: транспортные ошибки не всплывают (см. SyncEngine).
type RemoteStore interface {
	FetchStories(ctx context.Context, email string) ([]model.StoryRecord, error)
	DeleteStory(ctx context.Context, email, id string) bool
	ClearStories(ctx context.Context, email string) bool
}

// SyncEngine согласует локальную коллекцию с удалённым зеркалом.
// Локальное состояние всегда первично: сеть может отсутствовать,
// и любой сбой RemoteFetch/Merge молча деградирует до "только локально".
type SyncEngine struct {
	mu     sync.Mutex
	store  repo.Store
	remote RemoteStore
	log    *zap.SugaredLogger

	email string
	guest bool

	records []model.StoryRecord
	// skipNextReload подавляет один следующий Reload после локального
	// удаления: иначе конкурентная перезагрузка со старым снимком может
	// «воскресить» только что удалённую запись до подтверждения удаления
	// на сервере. Это правило корректности, а не оптимизация.
	skipNextReload bool
}

// NewSyncEngine создаёт движок для указанного пользователя.
// Для гостя remote может быть nil — все сетевые шаги пропускаются.
func NewSyncEngine(store repo.Store, remote RemoteStore, email string, guest bool, log *zap.SugaredLogger) *SyncEngine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SyncEngine{store: store, remote: remote, email: email, guest: guest, log: log}
}

// Records возвращает снимок текущего состояния в памяти.
func (e *SyncEngine) Records() []model.StoryRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.records)
}

// Reload выполняет цикл LocalRead → RemoteFetch → Merge.
// Локальное чтение применяется к состоянию сразу; удалённые записи
// лишь дополняют коллекцию (ничего локального не перетирают), и запись
// на диск происходит только если слияние добавило хоть одну запись.
func (e *SyncEngine) Reload(ctx context.Context) ([]model.StoryRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.skipNextReload {
		e.skipNextReload = false
		e.log.Debugw("reload suppressed after local delete")
		return snapshot(e.records), nil
	}

	local, err := e.store.ListStories()
	if err != nil {
		return nil, err
	}
	e.records = local

	if e.guest || e.remote == nil {
		return snapshot(e.records), nil
	}

	remote, err := e.remote.FetchStories(ctx, e.email)
	if err != nil {
		e.log.Warnw("remote fetch failed, staying local", "error", err)
		return snapshot(e.records), nil
	}

	seen := make(map[string]struct{}, len(local))
	for _, r := range local {
		seen[r.ID] = struct{}{}
	}
	var fresh []model.StoryRecord
	for _, r := range remote {
		if _, ok := seen[r.ID]; !ok {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) == 0 {
		return snapshot(e.records), nil
	}

	merged := append(local, fresh...)
	sortNewestFirst(merged)
	if err := e.store.ReplaceStories(merged); err != nil {
		e.log.Warnw("persisting merged collection failed, staying local", "error", err)
		return snapshot(e.records), nil
	}
	e.records = merged
	return snapshot(e.records), nil
}

// Insert добавляет запись в начало коллекции и усекает её до лимита.
func (e *SyncEngine) Insert(record model.StoryRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	local, err := e.store.ListStories()
	if err != nil {
		return err
	}
	merged := append([]model.StoryRecord{record}, local...)
	sortNewestFirst(merged)
	if len(merged) > MaxSavedStories {
		merged = merged[:MaxSavedStories]
	}
	if err := e.store.ReplaceStories(merged); err != nil {
		return err
	}
	e.records = merged
	return nil
}

// Delete удаляет запись локально и фиксирует это на диске; только после
// этого — best-effort удаление на сервере. Следующий Reload подавляется.
func (e *SyncEngine) Delete(ctx context.Context, id string) (PersistResult, error) {
	e.mu.Lock()

	local, err := e.store.ListStories()
	if err != nil {
		e.mu.Unlock()
		return PersistedLocally, err
	}
	kept := local[:0:0]
	for _, r := range local {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := e.store.ReplaceStories(kept); err != nil {
		e.mu.Unlock()
		return PersistedLocally, err
	}
	e.records = kept
	e.skipNextReload = true
	e.mu.Unlock()

	if e.guest || e.remote == nil {
		return PersistedLocally, nil
	}
	if e.remote.DeleteStory(ctx, e.email, id) {
		return PersistedLocallyAndRemotely, nil
	}
	e.log.Warnw("remote delete failed, record removed locally only", "id", id)
	return PersistedLocally, nil
}

// Clear очищает коллекцию в границах активного профиля: при выбранном
// профиле — только его записи, без профиля — всю коллекцию. Удалённое
// зеркало умеет чиститься только целиком, поэтому профильная очистка —
// строго локальная операция: чужие записи на сервере не трогаются.
func (e *SyncEngine) Clear(ctx context.Context, activeProfileID *string) (PersistResult, error) {
	e.mu.Lock()

	local, err := e.store.ListStories()
	if err != nil {
		e.mu.Unlock()
		return PersistedLocally, err
	}
	var kept []model.StoryRecord
	if activeProfileID != nil {
		for _, r := range local {
			if r.ProfileID != *activeProfileID {
				kept = append(kept, r)
			}
		}
	}
	if err := e.store.ReplaceStories(kept); err != nil {
		e.mu.Unlock()
		return PersistedLocally, err
	}
	e.records = kept
	e.skipNextReload = true
	e.mu.Unlock()

	if e.guest || e.remote == nil || activeProfileID != nil {
		return PersistedLocally, nil
	}
	if e.remote.ClearStories(ctx, e.email) {
		return PersistedLocallyAndRemotely, nil
	}
	e.log.Warnw("remote clear failed, collection cleared locally only")
	return PersistedLocally, nil
}

func sortNewestFirst(records []model.StoryRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
}

func snapshot(records []model.StoryRecord) []model.StoryRecord {
	out := make([]model.StoryRecord, len(records))
	copy(out, records)
	return out
}
