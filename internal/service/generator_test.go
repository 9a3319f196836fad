package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateID(t *testing.T) {
	// Arrange
	generator := NewUUIDGenerator()
	seen := make(map[string]bool)

	// Act & Assert
	for i := 0; i < 1000; i++ {
		id := generator.GenerateID()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())

		assert.False(t, seen[id], "Duplicate id generated: %s", id)
		seen[id] = true
	}
}
