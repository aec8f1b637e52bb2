package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID_Version7(t *testing.T) {
	id, err := uuid.Parse(NewSessionID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewSessionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewSessionID()
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}
