package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate("user")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "user-"))
	// prefix + dash + 21-char nanoid
	assert.Len(t, id, len("user-")+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := Generate("tok")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		id := MustGenerate("sess")
		assert.True(t, strings.HasPrefix(id, "sess-"))
	})
}
