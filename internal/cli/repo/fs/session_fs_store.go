package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// SessionFSStore — файловое хранилище токена и e-mail текущего пользователя.
// Dir задаёт каталог сессии; пустой Dir — каталог конфигурации пользователя.
type SessionFSStore struct {
	Dir string
}

func (s SessionFSStore) configDir() (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o700); err != nil {
			return "", err
		}
		return s.Dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "SpellTales")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s SessionFSStore) tokenPath() (string, error) {
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "access_token"), nil
}

func (s SessionFSStore) emailPath() (string, error) {
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "user_email"), nil
}

// SaveToken сохраняет access-токен в файл.
func (s SessionFSStore) SaveToken(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// LoadToken читает access-токен из файла.
func (s SessionFSStore) LoadToken() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(trimTrailing(b)), nil
}

// SaveEmail сохраняет e-mail пользователя в файл.
func (s SessionFSStore) SaveEmail(email string) error {
	if email == "" {
		return errors.New("empty email")
	}
	p, err := s.emailPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(email), 0o600)
}

// LoadEmail читает e-mail пользователя из файла.
func (s SessionFSStore) LoadEmail() (string, error) {
	p, err := s.emailPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("no stored email")
	}
	return string(trimTrailing(b)), nil
}

// Clear удаляет сохранённую сессию (выход из аккаунта).
func (s SessionFSStore) Clear() error {
	tp, err := s.tokenPath()
	if err != nil {
		return err
	}
	ep, err := s.emailPath()
	if err != nil {
		return err
	}
	err1 := os.Remove(tp)
	err2 := os.Remove(ep)
	if err1 != nil && !errors.Is(err1, os.ErrNotExist) {
		return err1
	}
	if err2 != nil && !errors.Is(err2, os.ErrNotExist) {
		return err2
	}
	return nil
}

// обрезаем завершающие переводы строки/пробелы
func trimTrailing(b []byte) []byte {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}
