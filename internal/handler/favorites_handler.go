package handler

import (
	"net/http"

	"coffeecorner/internal/service"
	"coffeecorner/pkg/logger"
)

// FavoritesResponse lists the favorited product ids in insertion order.
type FavoritesResponse struct {
	FavoriteIDs []string `json:"favoriteIds"`
}

// ToggleFavoriteResponse reports the membership state after a toggle.
type ToggleFavoriteResponse struct {
	ProductID string `json:"productId"`
	Favorited bool   `json:"favorited"`
}

// FavoritesHandler serves the favorites endpoints.
type FavoritesHandler struct {
	favoritesService service.FavoritesServiceInterface
	logger           *logger.Logger
}

// NewFavoritesHandler creates a new FavoritesHandler with the given service and logger
func NewFavoritesHandler(favoritesService service.FavoritesServiceInterface, logger *logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		logger:           logger.WithComponent("favorites_handler"),
	}
}

// GetFavorites handles GET /api/v1/favorites
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, FavoritesResponse{
		FavoriteIDs: h.favoritesService.FavoriteIDs(),
	})
}

// ToggleFavorite handles POST /api/v1/favorites/{productId}/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	favorited, err := h.favoritesService.ToggleFavorite(r.Context(), productID)
	if err != nil {
		// Membership already flipped in memory; only durability failed.
		h.logger.Error("Failed to persist favorite toggle", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to persist favorites")
		return
	}

	writeJSONResponse(w, http.StatusOK, ToggleFavoriteResponse{
		ProductID: productID,
		Favorited: favorited,
	})
}
