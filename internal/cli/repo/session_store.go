package repo

// SessionStore абстракция для хранения сессии пользователя (токен и e-mail).
type SessionStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveEmail(email string) error
	LoadEmail() (string, error)
	Clear() error
}
