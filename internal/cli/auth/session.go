package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
)

// Гостевой режим: фиксированные значения вместо реальной сессии.
const (
	GuestEmail = "Guest User"
	GuestToken = "guest-token"
)

// ErrNotLoggedIn — нет сохранённой сессии.
var ErrNotLoggedIn = errors.New("not logged in: run 'login', 'register' or 'guest' first")

// Session — текущая сессия CLI, восстановленная из файлового хранилища.
type Session struct {
	Email string
	Token string
}

// IsGuest сообщает, что сессия гостевая.
func (s Session) IsGuest() bool { return s.Email == GuestEmail }

// Current восстанавливает сессию из хранилища.
func Current(store repo.SessionStore) (Session, error) {
	email, err := store.LoadEmail()
	if err != nil {
		return Session{}, ErrNotLoggedIn
	}
	token, err := store.LoadToken()
	if err != nil {
		return Session{}, ErrNotLoggedIn
	}
	return Session{Email: email, Token: token}, nil
}

// Begin сохраняет новую сессию после успешного входа или регистрации.
func Begin(store repo.SessionStore, email, token string) error {
	if err := store.SaveEmail(email); err != nil {
		return err
	}
	return store.SaveToken(token)
}

// BeginGuest сохраняет гостевую сессию. Гость работает только локально:
// рейтинг по умолчанию и пустой список слов задаются сразу.
func BeginGuest(store repo.SessionStore, local repo.Store) error {
	if err := Begin(store, GuestEmail, GuestToken); err != nil {
		return err
	}
	if err := local.SetGlobalAgeRating(model.AgeToddlers); err != nil {
		return err
	}
	return local.SaveCachedWords([]string{})
}

// End удаляет сохранённую сессию.
func End(store repo.SessionStore) error {
	return store.Clear()
}

// TokenExpiry извлекает срок действия access-токена без проверки подписи.
// Подпись проверяет сервер; клиенту нужна только дата для команды status.
// Для гостевого токена и токенов без exp возвращается нулевое время.
func TokenExpiry(token string) (time.Time, error) {
	if token == GuestToken {
		return time.Time{}, nil
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
