package app

import (
	"github.com/avc-dev/bookmarks/internal/config"
	"github.com/avc-dev/bookmarks/internal/handler"
	"github.com/avc-dev/bookmarks/internal/middleware"
	"github.com/avc-dev/bookmarks/internal/repository"
	"github.com/avc-dev/bookmarks/internal/service"
	"github.com/avc-dev/bookmarks/internal/store"
	"github.com/avc-dev/bookmarks/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	store     *store.Store
	handler   *handler.Handler
	responder *handler.ErrorResponder
	auth      *middleware.AuthMiddleware
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) dependencies {
	idGenerator := service.NewUUIDGenerator()
	storage := initStorage(cfg, logger, idGenerator)

	repo := repository.New(storage)
	bookmarkService := service.NewBookmarkService(repo, idGenerator)
	bookmarkUsecase := usecase.NewBookmarkUsecase(repo, bookmarkService, logger)

	responder := handler.NewErrorResponder(cfg.IsProduction(), logger)
	h := handler.New(bookmarkUsecase, logger, responder)

	authService := service.NewTokenAuthService(cfg.APIToken)

	return dependencies{
		store:     storage,
		handler:   h,
		responder: responder,
		auth:      middleware.NewAuthMiddleware(authService, logger),
	}
}

// initStorage создает in-memory хранилище, при необходимости со стартовыми закладками
func initStorage(cfg *config.Config, logger *zap.Logger, idGenerator service.Generator) *store.Store {
	if !cfg.SeedBookmarks {
		logger.Info("Using empty in-memory storage")
		return store.NewStore()
	}

	storage := store.NewStoreWith(store.DefaultBookmarks(idGenerator.GenerateID)...)
	logger.Info("Using seeded in-memory storage", zap.Int("bookmarks", storage.Len()))

	return storage
}
