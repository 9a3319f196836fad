package usecase

import (
	"github.com/avc-dev/bookmarks/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name BookmarkRepository

// BookmarkRepository определяет интерфейс для работы с хранилищем закладок
type BookmarkRepository interface {
	List() []model.Bookmark
	FindByID(id string) (model.Bookmark, error)
	RemoveByID(id string) error
}

//go:generate mockery --name BookmarkService

// BookmarkService определяет интерфейс сервиса создания закладок
type BookmarkService interface {
	CreateBookmark(bookmark model.Bookmark) (model.Bookmark, error)
}

// BookmarkUsecase содержит бизнес-логику для работы с закладками
type BookmarkUsecase struct {
	repo    BookmarkRepository
	service BookmarkService
	logger  *zap.Logger
}

// NewBookmarkUsecase создает новый экземпляр BookmarkUsecase
func NewBookmarkUsecase(repo BookmarkRepository, service BookmarkService, logger *zap.Logger) *BookmarkUsecase {
	return &BookmarkUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
	}
}
