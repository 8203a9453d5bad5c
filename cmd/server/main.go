package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kandmgawron/SpellTales/internal/config"
	"github.com/kandmgawron/SpellTales/internal/handlers"
	"github.com/kandmgawron/SpellTales/internal/middleware"
	"github.com/kandmgawron/SpellTales/internal/repo"
	"github.com/kandmgawron/SpellTales/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	storyRepo := repo.NewStoryRepository(gormDB)
	userService := service.NewUserService(userRepo)
	storyService := service.NewStoryService(storyRepo, sugar)

	h := handlers.NewHandler(userService, storyService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
