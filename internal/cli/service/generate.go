package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/cli/api"
	"github.com/kandmgawron/SpellTales/internal/cli/classify"
	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/repo"
	"github.com/kandmgawron/SpellTales/internal/config"
)

// ErrRateLimited — превышен лимит запросов генерации для пользователя.
var ErrRateLimited = errors.New("too many generation requests, please wait a minute")

// lastStoryCacheLimit — тексты длиннее не кешируются под lastStory.
const lastStoryCacheLimit = 1800

// Generator — внешняя точка генерации историй.
type Generator interface {
	Generate(ctx context.Context, req api.GenerateRequest) (*api.GenerateResponse, error)
}

// RequestLimiter — скользящее окно запросов на пользователя.
type RequestLimiter interface {
	CanMakeRequest(key string, maxRequests int, window time.Duration) bool
}

// GenerateResult — итог одной попытки генерации. Record сохранена локально
// в любом случае; Persist сообщает, подтверждено ли удалённое зеркало.
type GenerateResult struct {
	Record  model.StoryRecord
	Persist PersistResult
}

// StoryService проводит один запрос генерации от лимитера до записи:
// лимит → сбор контекста → вызов с дедлайном → классификация → запись.
type StoryService struct {
	cfg      *config.Config
	limiter  RequestLimiter
	gen      Generator
	words    *WordsService
	profiles *ProfileService
	engine   *SyncEngine
	store    repo.Store
	log      *zap.SugaredLogger

	email string
	token string
	guest bool
}

// NewStoryService собирает оркестратор генерации.
func NewStoryService(
	cfg *config.Config,
	limiter RequestLimiter,
	gen Generator,
	words *WordsService,
	profiles *ProfileService,
	engine *SyncEngine,
	store repo.Store,
	email, token string,
	guest bool,
	log *zap.SugaredLogger,
) *StoryService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &StoryService{
		cfg: cfg, limiter: limiter, gen: gen,
		words: words, profiles: profiles, engine: engine, store: store,
		email: email, token: token, guest: guest, log: log,
	}
}

// Generate выполняет полный цикл генерации для заданных параметров.
// Неудача генерации — не ошибка вызова: неуспешный исход тоже становится
// записью коллекции. Ошибка возвращается только когда записать итог
// локально не удалось (или сработал лимит — см. ErrRateLimited).
func (s *StoryService) Generate(ctx context.Context, params model.StoryParams) (*GenerateResult, error) {
	if !s.limiter.CanMakeRequest(s.email, s.cfg.RateLimitMax, s.cfg.RateWindow()) {
		return nil, ErrRateLimited
	}

	// Список слов — вспомогательный контекст: его недоступность
	// не должна останавливать генерацию.
	var spellingWords []string
	if s.words != nil {
		w, err := s.words.Words(ctx)
		if err != nil {
			s.log.Warnw("spelling words unavailable", "error", err)
		} else {
			spellingWords = w
		}
	}

	active, err := s.profiles.Active()
	if err != nil {
		return nil, err
	}
	ageRating := params.AgeRating
	if !model.ValidAgeRating(ageRating) {
		ageRating, err = s.profiles.EffectiveAgeRating()
		if err != nil {
			return nil, err
		}
	}

	req := api.GenerateRequest{
		Genre:      params.Genre,
		Character1: params.Character1,
		Character2: params.Character2,
		Keyword1:   params.Keyword1,
		Keyword2:   params.Keyword2,
		Keyword3:   params.Keyword3,
		UserProfile: api.UserProfile{
			Email:       s.email,
			AccessToken: s.token,
		},
		UserEmail:     s.email,
		AgeRating:     ageRating,
		SpellingWords: spellingWords,
	}
	if active != nil {
		req.ProfileID = active.ID
		req.ProfileName = active.Name
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout())
	defer cancel()

	resp, genErr := s.gen.Generate(genCtx, req)
	text := api.ExtractStoryText(resp)
	outcome := classify.Classify(text, genErr)

	content := text
	if outcome.Status == model.StatusFailed {
		content = classify.FailureMessage(outcome.Kind)
	}

	record := model.StoryRecord{
		ID:          recordID(resp, outcome.Status),
		Timestamp:   time.Now().UnixMilli(),
		Content:     content,
		Status:      outcome.Status,
		FailureKind: outcome.Kind,
		StoryParams: model.StoryParams{
			Genre:      params.Genre,
			Character1: params.Character1,
			Character2: params.Character2,
			Keyword1:   params.Keyword1,
			Keyword2:   params.Keyword2,
			Keyword3:   params.Keyword3,
			AgeRating:  ageRating,
		},
	}
	if active != nil {
		record.ProfileID = active.ID
		record.ProfileName = active.Name
	}

	if err := s.engine.Insert(record); err != nil {
		return nil, err
	}

	if outcome.Status == model.StatusSuccess && len(text) < lastStoryCacheLimit {
		if err := s.store.SaveLastStory(text); err != nil {
			s.log.Warnw("caching last story failed", "error", err)
		}
	}

	result := &GenerateResult{Record: record, Persist: PersistedLocally}
	if outcome.Status == model.StatusSuccess && resp != nil && resp.StoryID != "" && !s.guest {
		result.Persist = PersistedLocallyAndRemotely
	}
	return result, nil
}

// Retry повторяет генерацию по неизменяемым параметрам сохранённой записи,
// предварительно проверяя возрастную допустимость для текущего зрителя.
func (s *StoryService) Retry(ctx context.Context, record model.StoryRecord) (*GenerateResult, error) {
	viewer, err := s.profiles.EffectiveAgeRating()
	if err != nil {
		return nil, err
	}
	if !model.CanReload(record.AgeRating, viewer) {
		return nil, errors.New("story age rating is above the current viewer's rating")
	}
	return s.Generate(ctx, record.StoryParams)
}

// recordID: при успехе используется серверный идентификатор, если он есть;
// иначе запись получает новый UUID.
func recordID(resp *api.GenerateResponse, status model.Status) string {
	if status == model.StatusSuccess && resp != nil && resp.StoryID != "" {
		return resp.StoryID
	}
	return uuid.NewString()
}
