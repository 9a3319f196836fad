package store

import "github.com/avc-dev/bookmarks/internal/model"

// DefaultBookmarks возвращает стартовый набор закладок.
// newID вызывается для каждой записи, чтобы идентификаторы были уникальны между запусками.
func DefaultBookmarks(newID func() string) []model.Bookmark {
	return []model.Bookmark{
		{
			ID:          newID(),
			Title:       "GitHub",
			URL:         "https://www.github.com",
			Description: "build projects",
			Rating:      5,
		},
		{
			ID:          newID(),
			Title:       "Gmail",
			URL:         "https://www.gmail.com",
			Description: "send emails",
			Rating:      3,
		},
	}
}
