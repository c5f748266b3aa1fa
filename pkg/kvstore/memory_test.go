package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "greeting", "hello"))

		value, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "greeting", "goodbye"))

		value, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "goodbye", value)
	})
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "key", "value"))
	require.NoError(t, store.Remove(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is not an error
	assert.NoError(t, store.Remove(ctx, "key"))
}

func TestMemoryStoreMultiOps(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.MultiSet(ctx, map[string]string{
		"a": "1",
		"b": "2",
		"c": "3",
	}))
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.MultiRemove(ctx, "a", "c", "never-existed"))
	assert.Equal(t, 1, store.Len())

	value, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}
