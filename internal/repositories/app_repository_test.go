package repositories

import (
	"context"
	"testing"

	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppRepositoryInitialize(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	log := testLogger()

	appRepo := NewAppRepository(store, log)
	catalogRepo := NewCatalogRepository(store, log)

	t.Run("first call seeds catalog, empty cart and favorites", func(t *testing.T) {
		assert.False(t, appRepo.IsInitialized(ctx))

		require.NoError(t, appRepo.Initialize(ctx))

		assert.True(t, appRepo.IsInitialized(ctx))
		assert.Len(t, catalogRepo.GetCategories(ctx), len(models.SeedCategories))
		assert.Len(t, catalogRepo.GetProducts(ctx), len(models.SeedProducts))

		cart, err := store.Get(ctx, KeyCart)
		require.NoError(t, err)
		assert.Equal(t, "[]", cart)

		favorites, err := store.Get(ctx, KeyFavorites)
		require.NoError(t, err)
		assert.Equal(t, "[]", favorites)
	})

	t.Run("second call does not re-seed", func(t *testing.T) {
		// Mutate a seeded slice, then initialize again
		require.NoError(t, store.Set(ctx, KeyCart, `[{"id":"x"}]`))

		require.NoError(t, appRepo.Initialize(ctx))

		cart, err := store.Get(ctx, KeyCart)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"x"}]`, cart, "re-initialization must not overwrite existing data")

		products := catalogRepo.GetProducts(ctx)
		assert.Len(t, products, len(models.SeedProducts))

		seen := make(map[string]bool)
		for _, p := range products {
			assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
			seen[p.ID] = true
		}
	})
}

func TestAppRepositoryIsInitializedOnReadFailure(t *testing.T) {
	appRepo := NewAppRepository(brokenStore{}, testLogger())

	// Read failures report uninitialized, they never error
	assert.False(t, appRepo.IsInitialized(context.Background()))
}

func TestAppRepositoryClearSession(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	log := testLogger()

	appRepo := NewAppRepository(store, log)
	require.NoError(t, appRepo.Initialize(ctx))
	require.NoError(t, store.Set(ctx, KeyUser, `{"id":"u1"}`))
	require.NoError(t, store.Set(ctx, KeyTheme, ThemeDark))

	require.NoError(t, appRepo.ClearSession(ctx))

	for _, key := range []string{KeyCart, KeyFavorites, KeyUser} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, kvstore.ErrNotFound, "key %s should be removed", key)
	}

	// Catalog and theme survive a session reset
	_, err := store.Get(ctx, KeyProducts)
	assert.NoError(t, err)
	theme, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
	assert.True(t, appRepo.IsInitialized(ctx))
}
