package service

import (
	"errors"
	"fmt"

	"github.com/avc-dev/bookmarks/internal/model"
	"github.com/avc-dev/bookmarks/internal/store"
)

// MaxIDAttempts ограничивает число попыток сгенерировать свободный id
const MaxIDAttempts = 5

// BookmarkRepository определяет методы хранилища, нужные сервису
type BookmarkRepository interface {
	FindByID(id string) (model.Bookmark, error)
	Insert(bookmark model.Bookmark) error
}

// BookmarkService содержит логику создания закладок
type BookmarkService struct {
	repo        BookmarkRepository
	idGenerator Generator
}

// NewBookmarkService создает новый экземпляр BookmarkService
func NewBookmarkService(repo BookmarkRepository, idGenerator Generator) *BookmarkService {
	return &BookmarkService{
		repo:        repo,
		idGenerator: idGenerator,
	}
}

// CreateBookmark присваивает закладке новый уникальный id и сохраняет её.
// Переданный bookmark.ID игнорируется.
func (s *BookmarkService) CreateBookmark(bookmark model.Bookmark) (model.Bookmark, error) {
	id, err := s.generateUniqueID()
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to generate unique id: %w", err)
	}
	bookmark.ID = id

	if err := s.repo.Insert(bookmark); err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to save bookmark: %w", err)
	}

	return bookmark, nil
}

// generateUniqueID генерирует id, проверяя что он ещё не занят
func (s *BookmarkService) generateUniqueID() (string, error) {
	for attempt := 0; attempt < MaxIDAttempts; attempt++ {
		id := s.idGenerator.GenerateID()
		if id == "" {
			continue
		}

		_, err := s.repo.FindByID(id)
		if errors.Is(err, store.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("failed to generate unique id after %d attempts: %w", MaxIDAttempts, ErrMaxRetriesExceeded)
}
