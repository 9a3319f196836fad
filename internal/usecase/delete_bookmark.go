package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/bookmarks/internal/store"
	"go.uber.org/zap"
)

// DeleteBookmark удаляет закладку по id
func (u *BookmarkUsecase) DeleteBookmark(id string) error {
	err := u.repo.RemoveByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			u.logger.Error("Bookmark not found", zap.String("id", id))
			return fmt.Errorf("%w: %w", ErrBookmarkNotFound, err)
		}
		return fmt.Errorf("failed to delete bookmark %s: %w", id, err)
	}

	u.logger.Info("Bookmark deleted", zap.String("id", id))

	return nil
}
