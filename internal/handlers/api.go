package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/config"
	"github.com/kandmgawron/SpellTales/internal/middleware"
	"github.com/kandmgawron/SpellTales/internal/model"
	"github.com/kandmgawron/SpellTales/internal/service"
)

// apiRequest — объединённая форма входящего запроса: персистентные
// операции несут action, запрос генерации — только параметры истории.
type apiRequest struct {
	Action    string   `json:"action"`
	UserEmail string   `json:"userEmail"`
	StoryID   string   `json:"storyId"`
	Password  string   `json:"password"`
	Words     []string `json:"words"`

	Genre         string   `json:"genre"`
	Character1    string   `json:"character1"`
	Character2    string   `json:"character2"`
	Keyword1      string   `json:"keyword1"`
	Keyword2      string   `json:"keyword2"`
	Keyword3      string   `json:"keyword3"`
	AgeRating     string   `json:"ageRating"`
	ProfileID     string   `json:"profileId"`
	ProfileName   string   `json:"profileName"`
	SpellingWords []string `json:"spellingWords"`
}

type storyDTO struct {
	StoryID      string `json:"story_id"`
	Timestamp    string `json:"timestamp"`
	StoryContent string `json:"story_content"`
	Status       string `json:"status,omitempty"`
	FailureType  string `json:"failure_type,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Character1   string `json:"character1,omitempty"`
	Character2   string `json:"character2,omitempty"`
	Keyword1     string `json:"keyword1,omitempty"`
	Keyword2     string `json:"keyword2,omitempty"`
	Keyword3     string `json:"keyword3,omitempty"`
	AgeRating    string `json:"age_rating,omitempty"`
	ProfileID    string `json:"profile_id,omitempty"`
	ProfileName  string `json:"profile_name,omitempty"`
}

type actionResponse struct {
	Success     bool       `json:"success"`
	Stories     []storyDTO `json:"stories,omitempty"`
	Words       []string   `json:"words,omitempty"`
	AccessToken string     `json:"accessToken,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type generateResponse struct {
	Story   string `json:"story"`
	StoryID string `json:"story_id,omitempty"`
}

// APIHandler обслуживает единственный POST-эндпоинт клиента.
type APIHandler struct {
	users   *service.UserService
	stories *service.StoryService
	log     *zap.SugaredLogger
	cfg     *config.Config
}

// NewAPIHandler создаёт хендлер.
func NewAPIHandler(users *service.UserService, stories *service.StoryService, log *zap.SugaredLogger, cfg *config.Config) *APIHandler {
	return &APIHandler{users: users, stories: stories, log: log, cfg: cfg}
}

// Handle разводит запрос по полю action.
func (h *APIHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req apiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	switch req.Action {
	case "":
		h.generate(ctx, w, req)
	case "register":
		h.register(ctx, w, req)
	case "login":
		h.login(ctx, w, req)
	case "verify_password":
		h.verifyPassword(ctx, w, req)
	case "get_user_stories":
		h.listStories(ctx, w)
	case "delete_story":
		h.deleteStory(ctx, w, req)
	case "clear_user_stories":
		h.clearStories(ctx, w)
	case "get_user_words":
		h.getWords(ctx, w, req)
	case "update_user_words":
		h.updateWords(ctx, w, req)
	default:
		writeJSON(w, actionResponse{Success: false, Error: "unknown action"})
	}
}

func (h *APIHandler) generate(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	// генерация доступна и гостю: без авторизации история не сохраняется
	userID, _ := middleware.GetUserIDFromContext(ctx)

	content, storyID, err := h.stories.Generate(ctx, userID, service.GenerateParams{
		Genre:         req.Genre,
		Character1:    req.Character1,
		Character2:    req.Character2,
		Keyword1:      req.Keyword1,
		Keyword2:      req.Keyword2,
		Keyword3:      req.Keyword3,
		AgeRating:     req.AgeRating,
		ProfileID:     req.ProfileID,
		ProfileName:   req.ProfileName,
		SpellingWords: req.SpellingWords,
	})
	if err != nil {
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, generateResponse{Story: content, StoryID: storyID})
}

func (h *APIHandler) register(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	if req.UserEmail == "" || req.Password == "" {
		writeJSON(w, actionResponse{Success: false, Error: "email and password are required"})
		return
	}
	u, err := h.users.Register(ctx, req.UserEmail, req.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		writeJSON(w, actionResponse{Success: false, Error: "email already taken"})
		return
	}
	if err != nil {
		h.log.Errorw("register failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondWithToken(w, u)
}

func (h *APIHandler) login(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	u, err := h.users.Login(ctx, req.UserEmail, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, actionResponse{Success: false, Error: "invalid email or password"})
		return
	}
	if err != nil {
		h.log.Errorw("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondWithToken(w, u)
}

func (h *APIHandler) respondWithToken(w http.ResponseWriter, u *model.User) {
	token, err := middleware.BuildToken(u.ID, u.Email, h.cfg.AuthSecret)
	if err != nil {
		h.log.Errorw("token build failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: true, AccessToken: token})
}

func (h *APIHandler) verifyPassword(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	ok, err := h.users.VerifyPassword(ctx, req.UserEmail, req.Password)
	if err != nil {
		h.log.Errorw("verify password failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: ok})
}

func (h *APIHandler) listStories(ctx context.Context, w http.ResponseWriter) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeJSON(w, actionResponse{Success: false, Error: "unauthorized"})
		return
	}
	stories, err := h.stories.List(ctx, userID)
	if err != nil {
		h.log.Errorw("list stories failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	dtos := make([]storyDTO, 0, len(stories))
	for _, s := range stories {
		dtos = append(dtos, toDTO(s))
	}
	writeJSON(w, actionResponse{Success: true, Stories: dtos})
}

func (h *APIHandler) deleteStory(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeJSON(w, actionResponse{Success: false, Error: "unauthorized"})
		return
	}
	found, err := h.stories.Delete(ctx, userID, req.StoryID)
	if err != nil {
		h.log.Errorw("delete story failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: found})
}

func (h *APIHandler) clearStories(ctx context.Context, w http.ResponseWriter) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeJSON(w, actionResponse{Success: false, Error: "unauthorized"})
		return
	}
	if err := h.stories.Clear(ctx, userID); err != nil {
		h.log.Errorw("clear stories failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: true})
}

func (h *APIHandler) getWords(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		writeJSON(w, actionResponse{Success: false, Error: "unauthorized"})
		return
	}
	words, err := h.users.Words(ctx, req.UserEmail)
	if err != nil {
		h.log.Errorw("get words failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: true, Words: words})
}

func (h *APIHandler) updateWords(ctx context.Context, w http.ResponseWriter, req apiRequest) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeJSON(w, actionResponse{Success: false, Error: "unauthorized"})
		return
	}
	if err := h.users.UpdateWords(ctx, userID, req.Words); err != nil {
		h.log.Errorw("update words failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, actionResponse{Success: true})
}

func toDTO(s model.Story) storyDTO {
	return storyDTO{
		StoryID:      s.ID,
		Timestamp:    time.UnixMilli(s.Timestamp).UTC().Format(time.RFC3339),
		StoryContent: s.Content,
		Status:       s.Status,
		FailureType:  s.FailureType,
		Genre:        s.Genre,
		Character1:   s.Character1,
		Character2:   s.Character2,
		Keyword1:     s.Keyword1,
		Keyword2:     s.Keyword2,
		Keyword3:     s.Keyword3,
		AgeRating:    s.AgeRating,
		ProfileID:    s.ProfileID,
		ProfileName:  s.ProfileName,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
