package router

import (
	"net/http"

	"coffeecorner/internal/handler"
)

// NewRouter wires all API routes onto a ServeMux.
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	favoritesHandler *handler.FavoritesHandler,
	sessionHandler *handler.SessionHandler,
	settingsHandler *handler.SettingsHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/v1/catalog/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/catalog/products", catalogHandler.GetProducts)
	mux.HandleFunc("GET /api/v1/catalog/products/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/catalog/special-offers", catalogHandler.GetSpecialOffers)

	// Cart and checkout
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("GET /api/v1/cart/quote", cartHandler.GetQuote)
	mux.HandleFunc("POST /api/v1/checkout", cartHandler.Checkout)

	// Favorites
	mux.HandleFunc("GET /api/v1/favorites", favoritesHandler.GetFavorites)
	mux.HandleFunc("POST /api/v1/favorites/{productId}/toggle", favoritesHandler.ToggleFavorite)

	// Session and profile
	mux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession)
	mux.HandleFunc("POST /api/v1/session/login", sessionHandler.Login)
	mux.HandleFunc("POST /api/v1/session/logout", sessionHandler.Logout)
	mux.HandleFunc("PUT /api/v1/session/profile", sessionHandler.UpdateProfile)
	mux.HandleFunc("PUT /api/v1/session/avatar", sessionHandler.UpdateAvatar)
	mux.HandleFunc("POST /api/v1/session/onboarding/complete", sessionHandler.CompleteOnboarding)
	mux.HandleFunc("POST /api/v1/session/onboarding/reset", sessionHandler.ResetOnboarding)

	// Settings and admin
	mux.HandleFunc("GET /api/v1/settings/theme", settingsHandler.GetTheme)
	mux.HandleFunc("POST /api/v1/settings/theme/toggle", settingsHandler.ToggleTheme)
	mux.HandleFunc("POST /api/v1/admin/reset", settingsHandler.ResetSession)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return mux
}
