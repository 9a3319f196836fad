package handler

import (
	"github.com/avc-dev/bookmarks/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name BookmarkUsecase

// BookmarkUsecase определяет операции над закладками, доступные через HTTP
type BookmarkUsecase interface {
	ListBookmarks() []model.Bookmark
	GetBookmark(id string) (model.Bookmark, error)
	CreateBookmark(req model.CreateBookmarkRequest) (model.Bookmark, error)
	DeleteBookmark(id string) error
}

// Handler обслуживает HTTP маршруты /bookmarks
type Handler struct {
	usecase   BookmarkUsecase
	logger    *zap.Logger
	responder *ErrorResponder
}

// New создает новый Handler
func New(usecase BookmarkUsecase, logger *zap.Logger, responder *ErrorResponder) *Handler {
	return &Handler{
		usecase:   usecase,
		logger:    logger,
		responder: responder,
	}
}
