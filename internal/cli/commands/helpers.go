package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/cli/api"
	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/cli/bootstrap"
	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/ratelimit"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
	fsrepo "github.com/kandmgawron/SpellTales/internal/cli/repo/fs"
	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

// limiter общий на процесс: окно запросов считается в его памяти.
var limiter = ratelimit.New()

// sessionStore — файловое хранилище сессии в каталоге из конфига.
func sessionStore(cfg *config.Config) fsrepo.SessionFSStore {
	return fsrepo.SessionFSStore{Dir: cfg.SessionDir}
}

// env — собранное окружение команды: сессия, хранилище и сервисы.
type env struct {
	session  auth.Session
	store    repo.Store
	client   *api.Client
	engine   *service.SyncEngine
	profiles *service.ProfileService
	words    *service.WordsService
	stories  *service.StoryService
	cleanup  func() error
	log      *zap.SugaredLogger
}

// newEnv восстанавливает сессию, открывает локальную БД и собирает сервисы.
// Для гостя сетевые сервисы не создаются: движок работает только локально.
func newEnv(cfg *config.Config) (*env, error) {
	session, store, cleanup, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	logger, _ := zap.NewProduction()
	log := logger.Sugar()

	e := &env{session: session, store: store, cleanup: cleanup, log: log}
	e.client = api.NewClient(cfg, session.Token, log)

	// Гость генерирует, но не зеркалирует: удалённые сторы ему не даются.
	var remote service.RemoteStore
	var wordsRemote service.WordsRemote
	if !session.IsGuest() {
		remote = e.client
		wordsRemote = e.client
	}
	gen := service.Generator(e.client)

	e.engine = service.NewSyncEngine(store, remote, session.Email, session.IsGuest(), log)
	e.profiles = service.NewProfileService(store)
	e.words = service.NewWordsService(store, wordsRemote, session.Email, session.IsGuest(), log)
	e.stories = service.NewStoryService(cfg, limiter, gen,
		e.words, e.profiles, e.engine, store,
		session.Email, session.Token, session.IsGuest(), log)
	return e, nil
}

func (e *env) close() {
	if e.cleanup != nil {
		_ = e.cleanup()
	}
	_ = e.log.Sync()
}

// requirePassword проверяет пароль аккаунта перед необратимой операцией.
// Гость проверку не проходит — у него нет пароля.
func (e *env) requirePassword(ctx context.Context, password string) error {
	if e.session.IsGuest() {
		return nil
	}
	if password == "" {
		return ErrUsage
	}
	ok, err := e.client.VerifyPassword(ctx, e.session.Email, password)
	if err != nil {
		return fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("wrong password")
	}
	return nil
}

// findRecord ищет запись по полному id или его уникальному префиксу.
func findRecord(records []model.StoryRecord, id string) (*model.StoryRecord, error) {
	var found *model.StoryRecord
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
		if len(id) >= 8 && len(records[i].ID) >= len(id) && records[i].ID[:len(id)] == id {
			if found != nil {
				return nil, fmt.Errorf("ambiguous story id prefix %q", id)
			}
			found = &records[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("story %q not found", id)
	}
	return found, nil
}
