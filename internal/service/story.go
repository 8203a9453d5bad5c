package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/model"
	"github.com/kandmgawron/SpellTales/internal/repo"
)

// GenerateParams — параметры запроса генерации.
type GenerateParams struct {
	Genre      string
	Character1 string
	Character2 string
	Keyword1   string
	Keyword2   string
	Keyword3   string
	AgeRating  string

	ProfileID   string
	ProfileName string

	SpellingWords []string
}

// blockedInputs имитирует контентные фильтры провайдера: запрос с таким
// словом получает отказ вместо истории.
var blockedInputs = []string{"blood", "weapon", "zombie"}

// storyTemplates — заготовки по жанрам; порядок подстановки:
// первый персонаж, первое слово, второй персонаж, второе слово.
var storyTemplates = map[string]string{
	"adventure": "Once upon a time, %s set off to find the legendary %s. Along the way they met %s near the old %s, and a great journey began.",
	"magic":     "In a land of wonder, %s found a glowing %s. With the help of %s, the spell of the %s was finally broken.",
	"animals":   "Deep in the forest, %s was looking for the mysterious %s. A friendly %s showed the way past the ancient %s.",
}

const defaultTemplate = "One bright morning, %s decided to explore the %s. There they met %s beside the %s, and a wonderful day began."

// StoryService — dev-вариант генерации: заготовленные тексты вместо
// внешнего провайдера плюс серверная копия коллекции пользователя.
type StoryService struct {
	stories repo.StoryRepository
	log     *zap.SugaredLogger
}

// NewStoryService создаёт сервис историй.
func NewStoryService(stories repo.StoryRepository, log *zap.SugaredLogger) *StoryService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &StoryService{stories: stories, log: log}
}

// Generate строит текст истории. Для авторизованного пользователя
// (userID != 0) успешная история сохраняется, возвращается её id.
// Заблокированный запрос получает текст отказа и пустой id.
func (s *StoryService) Generate(ctx context.Context, userID int64, p GenerateParams) (string, string, error) {
	if blocked(p) {
		return "Your story request was blocked by content filters. Please try again with different words.", "", nil
	}

	content := render(p)

	if userID == 0 {
		return content, "", nil
	}

	story := &model.Story{
		ID:          uuid.NewString(),
		UserID:      userID,
		Timestamp:   time.Now().UnixMilli(),
		Content:     content,
		Status:      "success",
		Genre:       p.Genre,
		Character1:  p.Character1,
		Character2:  p.Character2,
		Keyword1:    p.Keyword1,
		Keyword2:    p.Keyword2,
		Keyword3:    p.Keyword3,
		AgeRating:   p.AgeRating,
		ProfileID:   p.ProfileID,
		ProfileName: p.ProfileName,
	}
	if err := s.stories.Create(ctx, story); err != nil {
		// история уже сгенерирована — отдадим её без серверной копии
		s.log.Warnw("persisting generated story failed", "error", err)
		return content, "", nil
	}
	return content, story.ID, nil
}

// List возвращает истории пользователя, новые первыми.
func (s *StoryService) List(ctx context.Context, userID int64) ([]model.Story, error) {
	return s.stories.ListByUser(ctx, userID)
}

// Delete удаляет историю пользователя.
func (s *StoryService) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	return s.stories.Delete(ctx, userID, id)
}

// Clear удаляет все истории пользователя.
func (s *StoryService) Clear(ctx context.Context, userID int64) error {
	return s.stories.ClearByUser(ctx, userID)
}

func blocked(p GenerateParams) bool {
	inputs := []string{p.Character1, p.Character2, p.Keyword1, p.Keyword2, p.Keyword3}
	for _, in := range inputs {
		low := strings.ToLower(in)
		for _, b := range blockedInputs {
			if low != "" && strings.Contains(low, b) {
				return true
			}
		}
	}
	return false
}

func render(p GenerateParams) string {
	tpl, ok := storyTemplates[strings.ToLower(p.Genre)]
	if !ok {
		tpl = defaultTemplate
	}
	c1 := orDefault(p.Character1, "a brave child")
	c2 := orDefault(p.Character2, "a new friend")
	k1 := orDefault(p.Keyword1, "enchanted garden")
	k2 := orDefault(p.Keyword2, "hidden valley")

	text := fmt.Sprintf(tpl, c1, k1, c2, k2)
	if len(p.SpellingWords) > 0 {
		text += fmt.Sprintf(" Along the way they practised the words: %s.",
			strings.Join(p.SpellingWords, ", "))
	}
	return text
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
