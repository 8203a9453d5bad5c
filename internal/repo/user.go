package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kandmgawron/SpellTales/internal/model"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateWords(ctx context.Context, userID int64, wordsJSON string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdateWords(ctx context.Context, userID int64, wordsJSON string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("words", wordsJSON).Error
}
