package service

import (
	"context"
	"sync"

	"coffeecorner/internal/repositories"
	"coffeecorner/pkg/logger"
)

// SettingsServiceInterface owns the theme scalar: read on start, flipped in
// memory, persisted fire-and-forget.
type SettingsServiceInterface interface {
	Load(ctx context.Context)
	IsDarkMode() bool
	ToggleTheme(ctx context.Context) bool
}

// SettingsService holds the in-memory theme flag. When nothing is stored the
// flag falls back to the system preference supplied at construction.
type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
	logger       *logger.Logger

	mu         sync.RWMutex
	isDarkMode bool
}

// NewSettingsService creates a new SettingsService. systemPrefersDark is the
// default used when no theme has been persisted yet.
func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface, systemPrefersDark bool, logger *logger.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger.WithComponent("settings_service"),
		isDarkMode:   systemPrefersDark,
	}
}

// Load reads the persisted theme preference, keeping the system default when
// none is stored.
func (s *SettingsService) Load(ctx context.Context) {
	theme, ok := s.settingsRepo.GetTheme(ctx)
	if !ok {
		s.logger.Debug("No stored theme preference, keeping system default")
		return
	}

	s.mu.Lock()
	s.isDarkMode = theme == repositories.ThemeDark
	s.mu.Unlock()

	s.logger.Info("Theme preference loaded", "theme", theme)
}

// IsDarkMode reports the in-memory theme flag.
func (s *SettingsService) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDarkMode
}

// ToggleTheme flips the theme in memory and persists fire-and-forget: a
// persistence failure is logged and the flipped state stands. Returns the
// new dark-mode flag.
func (s *SettingsService) ToggleTheme(ctx context.Context) bool {
	s.mu.Lock()
	s.isDarkMode = !s.isDarkMode
	newValue := s.isDarkMode
	s.mu.Unlock()

	theme := repositories.ThemeLight
	if newValue {
		theme = repositories.ThemeDark
	}

	if err := s.settingsRepo.SaveTheme(ctx, theme); err != nil {
		s.logger.Warn("Failed to persist theme preference, memory state retained", "error", err)
	}

	return newValue
}
