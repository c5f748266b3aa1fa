package handler

import (
	"net/http"

	"coffeecorner/internal/repositories"
	"coffeecorner/internal/service"
	"coffeecorner/pkg/logger"
)

// ThemeResponse reports the active theme.
type ThemeResponse struct {
	Theme      string `json:"theme"`
	IsDarkMode bool   `json:"isDarkMode"`
}

// SettingsHandler serves the theme endpoints and the admin reset.
type SettingsHandler struct {
	settingsService  service.SettingsServiceInterface
	appRepo          repositories.AppRepositoryInterface
	cartService      service.CartServiceInterface
	favoritesService service.FavoritesServiceInterface
	sessionService   service.SessionServiceInterface
	logger           *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler with the given services, repository and logger
func NewSettingsHandler(settingsService service.SettingsServiceInterface, appRepo repositories.AppRepositoryInterface, cartService service.CartServiceInterface, favoritesService service.FavoritesServiceInterface, sessionService service.SessionServiceInterface, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService:  settingsService,
		appRepo:          appRepo,
		cartService:      cartService,
		favoritesService: favoritesService,
		sessionService:   sessionService,
		logger:           logger.WithComponent("settings_handler"),
	}
}

func themeResponse(isDarkMode bool) ThemeResponse {
	theme := repositories.ThemeLight
	if isDarkMode {
		theme = repositories.ThemeDark
	}
	return ThemeResponse{Theme: theme, IsDarkMode: isDarkMode}
}

// GetTheme handles GET /api/v1/settings/theme
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, themeResponse(h.settingsService.IsDarkMode()))
}

// ToggleTheme handles POST /api/v1/settings/theme/toggle
func (h *SettingsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	isDarkMode := h.settingsService.ToggleTheme(r.Context())
	writeJSONResponse(w, http.StatusOK, themeResponse(isDarkMode))
}

// ResetSession handles POST /api/v1/admin/reset. It removes the cart,
// favorites and user slices from storage; catalog and theme stay.
func (h *SettingsHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.appRepo.ClearSession(r.Context()); err != nil {
		h.logger.Error("Failed to clear session data", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to clear session data")
		return
	}

	// Resync the in-memory state containers with the now-empty slices.
	h.cartService.Load(r.Context())
	h.favoritesService.Load(r.Context())
	h.sessionService.Load(r.Context())

	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
