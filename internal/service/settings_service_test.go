package service

import (
	"context"
	"testing"

	"coffeecorner/internal/repositories"
	"coffeecorner/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(store kvstore.Store, systemPrefersDark bool) *SettingsService {
	log := testLogger()
	svc := NewSettingsService(repositories.NewSettingsRepository(store, log), systemPrefersDark, log)
	svc.Load(context.Background())
	return svc
}

func TestSettingsSystemDefault(t *testing.T) {
	store := kvstore.NewMemoryStore()

	assert.True(t, newSettingsService(store, true).IsDarkMode())
	assert.False(t, newSettingsService(store, false).IsDarkMode())
}

func TestSettingsStoredThemeBeatsSystemDefault(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repositories.NewSettingsRepository(store, testLogger())
	require.NoError(t, repo.SaveTheme(ctx, repositories.ThemeDark))

	assert.True(t, newSettingsService(store, false).IsDarkMode())
}

func TestSettingsToggleTheme(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newSettingsService(store, false)

	assert.True(t, svc.ToggleTheme(ctx))
	assert.True(t, svc.IsDarkMode())

	assert.False(t, svc.ToggleTheme(ctx))
	assert.False(t, svc.IsDarkMode())

	// The last toggle is what survives a reload
	assert.True(t, svc.ToggleTheme(ctx))
	assert.True(t, newSettingsService(store, false).IsDarkMode())
}

func TestSettingsToggleSurvivesPersistFailure(t *testing.T) {
	svc := newSettingsService(readOnlyStore{kvstore.NewMemoryStore()}, false)

	assert.True(t, svc.ToggleTheme(context.Background()))
	assert.True(t, svc.IsDarkMode(), "the flip stands even when the write fails")
}
