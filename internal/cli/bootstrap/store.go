package bootstrap

import (
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
	fsrepo "github.com/kandmgawron/SpellTales/internal/cli/repo/fs"
	reposqlite "github.com/kandmgawron/SpellTales/internal/cli/repo/sqlite"
	"github.com/kandmgawron/SpellTales/internal/config"
)

// OpenStore открывает локальное хранилище для текущей сессии,
// выполняет миграции и возвращает (session, store, cleanup, error).
// Пути к каталогам сессии и БД берутся из конфига.
// cleanup необходимо вызвать после окончания работы, чтобы закрыть БД.
func OpenStore(cfg *config.Config) (auth.Session, repo.Store, func() error, error) {
	session, err := auth.Current(fsrepo.SessionFSStore{Dir: cfg.SessionDir})
	if err != nil {
		return auth.Session{}, nil, nil, err
	}
	s, _, err := reposqlite.OpenForUser(cfg.ClientDBPath, session.Email)
	if err != nil {
		return auth.Session{}, nil, nil, fmt.Errorf("open user db: %w", err)
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return auth.Session{}, nil, nil, fmt.Errorf("migrate user db: %w", err)
	}
	cleanup := func() error { return s.Close() }
	return session, s, cleanup, nil
}
