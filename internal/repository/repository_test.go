package repository

import (
	"testing"

	"github.com/avc-dev/bookmarks/internal/model"
	"github.com/avc-dev/bookmarks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_WrapsStoreErrors(t *testing.T) {
	// Arrange
	repo := New(store.NewStore())
	bookmark := model.Bookmark{ID: "id1", Title: "t", URL: "https://example.com", Description: "d", Rating: 1}

	// Act & Assert
	require.NoError(t, repo.Insert(bookmark))

	err := repo.Insert(bookmark)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "failed to insert bookmark")

	_, err = repo.FindByID("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to find bookmark")

	err = repo.RemoveByID("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to remove bookmark")
}

func TestRepository_RoundTrip(t *testing.T) {
	// Arrange
	repo := New(store.NewStore())
	bookmark := model.Bookmark{ID: "id1", Title: "t", URL: "https://example.com", Description: "d", Rating: 4}

	// Act
	require.NoError(t, repo.Insert(bookmark))
	found, err := repo.FindByID("id1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, bookmark, found)
	assert.Equal(t, []model.Bookmark{bookmark}, repo.List())

	require.NoError(t, repo.RemoveByID("id1"))
	assert.Empty(t, repo.List())
}
