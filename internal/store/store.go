package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/bookmarks/internal/model"
)

var (
	ErrNotFound      = errors.New("bookmark not found")
	ErrAlreadyExists = errors.New("bookmark already exists")
)

// Store хранит закладки в памяти процесса в порядке добавления.
// Все операции защищены мьютексом: net/http обслуживает запросы параллельно.
type Store struct {
	bookmarks []model.Bookmark
	mutex     sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		bookmarks: make([]model.Bookmark, 0),
	}
}

// NewStoreWith создает хранилище, заполненное переданными закладками
func NewStoreWith(bookmarks ...model.Bookmark) *Store {
	s := NewStore()
	s.bookmarks = append(s.bookmarks, bookmarks...)
	return s
}

// List возвращает копию всех закладок в порядке добавления
func (s *Store) List() []model.Bookmark {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]model.Bookmark, len(s.bookmarks))
	copy(result, s.bookmarks)

	return result
}

func (s *Store) FindByID(id string) (model.Bookmark, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Bookmark{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	return s.bookmarks[i], nil
}

// Insert добавляет закладку в конец коллекции
func (s *Store) Insert(bookmark model.Bookmark) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Проверяем напрямую через indexOf, без FindByID (чтобы избежать повторной блокировки)
	if s.indexOf(bookmark.ID) >= 0 {
		return fmt.Errorf("id %s: %w", bookmark.ID, ErrAlreadyExists)
	}

	s.bookmarks = append(s.bookmarks, bookmark)

	return nil
}

// RemoveByID удаляет закладку с указанным id, сохраняя порядок остальных
func (s *Store) RemoveByID(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)

	return nil
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.bookmarks)
}

// indexOf должен вызываться под блокировкой
func (s *Store) indexOf(id string) int {
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}
