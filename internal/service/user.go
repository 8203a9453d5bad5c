package service

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kandmgawron/SpellTales/internal/model"
	"github.com/kandmgawron/SpellTales/internal/repo"
)

// ErrEmailTaken — e-mail уже занят другим аккаунтом.
var ErrEmailTaken = errors.New("email already taken")

// ErrInvalidCredentials — неверная пара e-mail/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService — регистрация, вход и список слов аккаунта.
type UserService struct {
	users repo.UserRepository
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register создаёт аккаунт с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, &model.User{
		Email:    email,
		Password: string(hash),
		Words:    "[]",
	})
}

// Login проверяет учётные данные и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// VerifyPassword перепроверяет пароль аккаунта (родительский контроль).
func (s *UserService) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	_, err := s.Login(ctx, email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Words возвращает список слов пользователя.
func (s *UserService) Words(ctx context.Context, email string) ([]string, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal([]byte(u.Words), &words); err != nil {
		// битое поле не должно ломать клиента
		return []string{}, nil
	}
	return words, nil
}

// UpdateWords перезаписывает список слов пользователя.
func (s *UserService) UpdateWords(ctx context.Context, userID int64, words []string) error {
	if words == nil {
		words = []string{}
	}
	b, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.users.UpdateWords(ctx, userID, string(b))
}
