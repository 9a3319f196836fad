package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/bookmarks/internal/model"
	"github.com/avc-dev/bookmarks/internal/store"
	"go.uber.org/zap"
)

// GetBookmark получает закладку по id
func (u *BookmarkUsecase) GetBookmark(id string) (model.Bookmark, error) {
	bookmark, err := u.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			u.logger.Error("Bookmark not found", zap.String("id", id))
			return model.Bookmark{}, fmt.Errorf("%w: %w", ErrBookmarkNotFound, err)
		}
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark %s: %w", id, err)
	}

	return bookmark, nil
}
