package repository

import (
	"fmt"

	"github.com/avc-dev/bookmarks/internal/model"
)

type Store interface {
	List() []model.Bookmark
	FindByID(id string) (model.Bookmark, error)
	Insert(bookmark model.Bookmark) error
	RemoveByID(id string) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) List() []model.Bookmark {
	return r.underlying.List()
}

func (r Repository) FindByID(id string) (model.Bookmark, error) {
	bookmark, err := r.underlying.FindByID(id)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to find bookmark: %w", err)
	}
	return bookmark, nil
}

func (r Repository) Insert(bookmark model.Bookmark) error {
	err := r.underlying.Insert(bookmark)
	if err != nil {
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	return nil
}

func (r Repository) RemoveByID(id string) error {
	err := r.underlying.RemoveByID(id)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}
