package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kandmgawron/SpellTales/internal/model"
)

// StoryRepository определяет контракт доступа к Story для слоя сервиса.
type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) error
	ListByUser(ctx context.Context, userID int64) ([]model.Story, error)
	Delete(ctx context.Context, userID int64, id string) (bool, error)
	ClearByUser(ctx context.Context, userID int64) error
}

type storyRepo struct {
	db *gorm.DB
}

// NewStoryRepository создаёт реализацию репозитория для Story.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepo{db: db}
}

func (r *storyRepo) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

// ListByUser возвращает истории пользователя, новые первыми.
func (r *storyRepo) ListByUser(ctx context.Context, userID int64) ([]model.Story, error) {
	var stories []model.Story
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&stories).Error
	return stories, err
}

// Delete удаляет историю пользователя; вторым значением — была ли она найдена.
func (r *storyRepo) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Story{})
	return res.RowsAffected > 0, res.Error
}

func (r *storyRepo) ClearByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Story{}).Error
}
