package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffeecorner/internal/handler"
	"coffeecorner/internal/repositories"
	"coffeecorner/internal/service"
	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the whole stack over an in-memory store, the same way
// main does it.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	store := kvstore.NewMemoryStore()

	appRepo := repositories.NewAppRepository(store, log)
	require.NoError(t, appRepo.Initialize(ctx))

	catalogService := service.NewCatalogService(repositories.NewCatalogRepository(store, log), log)
	cartService := service.NewCartService(repositories.NewCartRepository(store, log), log)
	favoritesService := service.NewFavoritesService(repositories.NewFavoritesRepository(store, log), log)
	sessionService := service.NewSessionService(repositories.NewUserRepository(store, log), repositories.NewSettingsRepository(store, log), log)
	settingsService := service.NewSettingsService(repositories.NewSettingsRepository(store, log), false, log)
	checkoutService := service.NewCheckoutService(cartService, sessionService, log)

	catalogService.Load(ctx)
	cartService.Load(ctx)
	favoritesService.Load(ctx)
	sessionService.Load(ctx)
	settingsService.Load(ctx)

	mux := NewRouter(
		handler.NewCatalogHandler(catalogService, log),
		handler.NewCartHandler(cartService, catalogService, checkoutService, log),
		handler.NewFavoritesHandler(favoritesService, log),
		handler.NewSessionHandler(sessionService, log),
		handler.NewSettingsHandler(settingsService, appRepo, cartService, favoritesService, sessionService, log),
	)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	var health map[string]string
	resp := doJSON(t, http.MethodGet, server.URL+"/health", nil, &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health["status"])
}

func TestCatalogEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("categories", func(t *testing.T) {
		var categories []models.Category
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/categories", nil, &categories)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, categories, len(models.SeedCategories))
	})

	t.Run("products with filter and sort", func(t *testing.T) {
		var products []models.Product
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/products?category=3&sort=price-low", nil, &products)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, products)
		for i, product := range products {
			assert.Equal(t, "3", product.CategoryID)
			if i > 0 {
				assert.LessOrEqual(t, products[i-1].Price, product.Price)
			}
		}
	})

	t.Run("search", func(t *testing.T) {
		var products []models.Product
		doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/products?q=espresso", nil, &products)
		assert.NotEmpty(t, products)
	})

	t.Run("product by id", func(t *testing.T) {
		var product models.Product
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/products/1", nil, &product)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Classic Espresso", product.Name)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/products/999", nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("special offers", func(t *testing.T) {
		var products []models.Product
		doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/special-offers", nil, &products)
		require.NotEmpty(t, products)
		for _, product := range products {
			assert.True(t, product.IsSpecialOffer)
		}
	})
}

func TestOrderFlow(t *testing.T) {
	server := newTestServer(t)

	// Checkout before login is rejected
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/checkout", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var session handler.SessionResponse
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/session/login",
		map[string]string{"name": "Alice", "email": "a@x.com"}, &session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, session.User)
	assert.True(t, session.IsLoggedIn)

	// Two adds of the same selection merge into one line
	addReq := handler.AddCartItemRequest{ProductID: "3", Size: models.SizeLarge, Sugar: models.SugarLow, Quantity: 2}
	var cart handler.CartResponse
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items", addReq, &cart)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	addReq.Quantity = 1
	doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items", addReq, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.ItemCount)
	assert.InDelta(t, 3*(4.5+1.00), cart.Subtotal, 1e-9, "vanilla latte plus the large surcharge")

	var quote service.Quote
	doJSON(t, http.MethodGet, server.URL+"/api/v1/cart/quote", nil, &quote)
	assert.InDelta(t, 16.5, quote.Subtotal, 1e-9)
	assert.InDelta(t, 1.65, quote.Discount, 1e-9)
	assert.InDelta(t, 0, quote.DeliveryFee, 1e-9)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/checkout", nil, &quote)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 14.85, quote.Total, 1e-9)

	doJSON(t, http.MethodGet, server.URL+"/api/v1/cart", nil, &cart)
	assert.Empty(t, cart.Items)

	doJSON(t, http.MethodGet, server.URL+"/api/v1/session", nil, &session)
	require.NotNil(t, session.User)
	assert.Equal(t, 1, session.User.OrdersCount)
	assert.Equal(t, models.PointsPerOrder, session.User.Points)
}

func TestCartItemLifecycle(t *testing.T) {
	server := newTestServer(t)

	var cart handler.CartResponse
	addReq := handler.AddCartItemRequest{ProductID: "1", Size: models.SizeSmall, Sugar: models.SugarNone, Quantity: 1}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items", addReq, &cart)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, cart.Items, 1)
	lineID := cart.Items[0].ID

	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/cart/items/%s", server.URL, lineID),
		handler.UpdateQuantityRequest{Quantity: 4}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, cart.ItemCount)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/cart/items/%s", server.URL, lineID), nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Items)

	t.Run("invalid size is rejected", func(t *testing.T) {
		bad := handler.AddCartItemRequest{ProductID: "1", Size: "Venti", Sugar: models.SugarNone, Quantity: 1}
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items", bad, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFavoritesEndpoints(t *testing.T) {
	server := newTestServer(t)

	var toggled handler.ToggleFavoriteResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/favorites/7/toggle", nil, &toggled)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, toggled.Favorited)

	var favorites handler.FavoritesResponse
	doJSON(t, http.MethodGet, server.URL+"/api/v1/favorites", nil, &favorites)
	assert.Equal(t, []string{"7"}, favorites.FavoriteIDs)

	doJSON(t, http.MethodPost, server.URL+"/api/v1/favorites/7/toggle", nil, &toggled)
	assert.False(t, toggled.Favorited)
}

func TestThemeEndpoints(t *testing.T) {
	server := newTestServer(t)

	var theme handler.ThemeResponse
	doJSON(t, http.MethodGet, server.URL+"/api/v1/settings/theme", nil, &theme)
	assert.False(t, theme.IsDarkMode)

	doJSON(t, http.MethodPost, server.URL+"/api/v1/settings/theme/toggle", nil, &theme)
	assert.True(t, theme.IsDarkMode)
	assert.Equal(t, "dark", theme.Theme)
}

func TestAdminReset(t *testing.T) {
	server := newTestServer(t)

	var session handler.SessionResponse
	doJSON(t, http.MethodPost, server.URL+"/api/v1/session/login",
		map[string]string{"name": "Bob", "email": "b@x.com"}, &session)

	var cart handler.CartResponse
	doJSON(t, http.MethodPost, server.URL+"/api/v1/cart/items",
		handler.AddCartItemRequest{ProductID: "2", Size: models.SizeMedium, Sugar: models.SugarMedium, Quantity: 1}, &cart)
	require.Len(t, cart.Items, 1)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/admin/reset", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doJSON(t, http.MethodGet, server.URL+"/api/v1/cart", nil, &cart)
	assert.Empty(t, cart.Items)

	doJSON(t, http.MethodGet, server.URL+"/api/v1/session", nil, &session)
	assert.False(t, session.IsLoggedIn)
	assert.Nil(t, session.User)

	// The catalog survives the reset
	var products []models.Product
	doJSON(t, http.MethodGet, server.URL+"/api/v1/catalog/products", nil, &products)
	assert.Len(t, products, len(models.SeedProducts))
}
