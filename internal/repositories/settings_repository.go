package repositories

import (
	"context"
	"errors"
	"fmt"

	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

// Persisted theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// SettingsRepositoryInterface persists the two scalar preferences: the
// onboarding-seen marker and the theme. They are independent of the user
// record and of each other.
type SettingsRepositoryInterface interface {
	HasSeenOnboarding(ctx context.Context) bool
	SetOnboardingSeen(ctx context.Context) error
	ResetOnboarding(ctx context.Context) error
	GetTheme(ctx context.Context) (string, bool)
	SaveTheme(ctx context.Context, theme string) error
}

type SettingsRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewSettingsRepository creates a new SettingsRepository with the given store and logger
func NewSettingsRepository(store kvstore.Store, logger *logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		logger: logger.WithComponent("settings_repository"),
		store:  store,
	}
}

// HasSeenOnboarding reports whether the onboarding marker is set. A failed
// read counts as not seen.
func (r *SettingsRepository) HasSeenOnboarding(ctx context.Context) bool {
	value, err := r.store.Get(ctx, KeyOnboarding)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Warn("Failed to read onboarding marker", "error", err)
		}
		return false
	}
	return value == "true"
}

// SetOnboardingSeen persists the onboarding marker.
func (r *SettingsRepository) SetOnboardingSeen(ctx context.Context) error {
	if err := r.store.Set(ctx, KeyOnboarding, "true"); err != nil {
		r.logger.Error("Failed to persist onboarding marker", "error", err)
		return fmt.Errorf("failed to persist onboarding marker: %v", err)
	}
	return nil
}

// ResetOnboarding removes the onboarding marker.
func (r *SettingsRepository) ResetOnboarding(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyOnboarding); err != nil {
		r.logger.Error("Failed to remove onboarding marker", "error", err)
		return fmt.Errorf("failed to remove onboarding marker: %v", err)
	}
	return nil
}

// GetTheme returns the persisted theme and whether one was stored. Missing
// or unreadable values report false so the caller falls back to the system
// preference.
func (r *SettingsRepository) GetTheme(ctx context.Context) (string, bool) {
	value, err := r.store.Get(ctx, KeyTheme)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Warn("Failed to read theme preference", "error", err)
		}
		return "", false
	}

	if value != ThemeDark && value != ThemeLight {
		r.logger.Warn("Ignoring unknown stored theme value", "value", value)
		return "", false
	}

	return value, true
}

// SaveTheme persists the theme preference.
func (r *SettingsRepository) SaveTheme(ctx context.Context, theme string) error {
	if err := r.store.Set(ctx, KeyTheme, theme); err != nil {
		r.logger.Error("Failed to persist theme preference", "error", err, "theme", theme)
		return fmt.Errorf("failed to persist theme preference: %v", err)
	}
	return nil
}
