package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/config"
	"github.com/kandmgawron/SpellTales/internal/middleware"
	"github.com/kandmgawron/SpellTales/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров. Клиент шлёт все запросы POST-ом
// в корень: персистентные операции несут поле action, запрос генерации
// различается по форме (action отсутствует).
func NewHandler(
	userService *service.UserService,
	storyService *service.StoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	api := NewAPIHandler(userService, storyService, logger, config)
	r.Post("/", api.Handle)

	return &Handler{Router: r}
}
