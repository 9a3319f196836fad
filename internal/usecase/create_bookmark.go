package usecase

import (
	"fmt"

	"github.com/avc-dev/bookmarks/internal/model"
	"github.com/avc-dev/bookmarks/internal/service"
	"go.uber.org/zap"
)

// CreateBookmark валидирует запрос и сохраняет новую закладку.
// При ошибке валидации хранилище не изменяется.
func (u *BookmarkUsecase) CreateBookmark(req model.CreateBookmarkRequest) (model.Bookmark, error) {
	rating, err := service.ValidateBookmark(req)
	if err != nil {
		u.logger.Error("Invalid bookmark data", zap.Error(err))
		return model.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	created, err := u.service.CreateBookmark(model.Bookmark{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Rating:      rating,
	})
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	u.logger.Info("Bookmark created", zap.String("id", created.ID))

	return created, nil
}
