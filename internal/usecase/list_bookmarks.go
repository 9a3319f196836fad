package usecase

import "github.com/avc-dev/bookmarks/internal/model"

// ListBookmarks возвращает все закладки в порядке добавления
func (u *BookmarkUsecase) ListBookmarks() []model.Bookmark {
	bookmarks := u.repo.List()
	if bookmarks == nil {
		return []model.Bookmark{}
	}
	return bookmarks
}
