package handler

import (
	"net/http"

	"coffeecorner/internal/service"
	"coffeecorner/models"
	"coffeecorner/pkg/logger"
)

// AddCartItemRequest selects a product and its customization; the server
// composes the denormalized cart line (snapshot price included).
type AddCartItemRequest struct {
	ProductID string       `json:"productId"`
	Size      models.Size  `json:"size"`
	Sugar     models.Sugar `json:"sugar"`
	Quantity  int          `json:"quantity"`
}

// UpdateQuantityRequest replaces a line item's quantity; zero or negative
// removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart with its derived values.
type CartResponse struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
}

// CartHandler serves the cart endpoints.
type CartHandler struct {
	cartService     service.CartServiceInterface
	catalogService  service.CatalogServiceInterface
	checkoutService service.CheckoutServiceInterface
	logger          *logger.Logger
}

// NewCartHandler creates a new CartHandler with the given services and logger
func NewCartHandler(cartService service.CartServiceInterface, catalogService service.CatalogServiceInterface, checkoutService service.CheckoutServiceInterface, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		catalogService:  catalogService,
		checkoutService: checkoutService,
		logger:          logger.WithComponent("cart_handler"),
	}
}

func (h *CartHandler) cartResponse() CartResponse {
	return CartResponse{
		Items:     h.cartService.Items(),
		ItemCount: h.cartService.ItemCount(),
		Subtotal:  h.cartService.Subtotal(),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.cartResponse())
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for add cart item", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.catalogService.ComposeCartItem(req.ProductID, req.Size, req.Sugar, req.Quantity)
	if err != nil {
		h.logger.Warn("Failed to compose cart item", "product_id", req.ProductID, "error", err)
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.cartService.AddItem(r.Context(), item); err != nil {
		// The in-memory cart already changed; only durability failed.
		h.logger.Error("Failed to persist cart addition", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to persist cart")
		return
	}

	writeJSONResponse(w, http.StatusCreated, h.cartResponse())
}

// UpdateQuantity handles PUT /api/v1/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateQuantityRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for quantity update", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cartService.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		h.logger.Error("Failed to persist quantity update", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to persist cart")
		return
	}

	writeJSONResponse(w, http.StatusOK, h.cartResponse())
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.cartService.RemoveItem(r.Context(), id); err != nil {
		h.logger.Error("Failed to persist cart removal", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to persist cart")
		return
	}

	writeJSONResponse(w, http.StatusOK, h.cartResponse())
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.ClearCart(r.Context()); err != nil {
		h.logger.Error("Failed to persist cart clear", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to persist cart")
		return
	}

	writeJSONResponse(w, http.StatusOK, h.cartResponse())
}

// GetQuote handles GET /api/v1/cart/quote
func (h *CartHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.checkoutService.Quote())
}

// Checkout handles POST /api/v1/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	quote, err := h.checkoutService.Checkout(r.Context())
	if err != nil {
		h.logger.Warn("Checkout rejected", "error", err)
		writeErrorResponse(w, http.StatusConflict, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, quote)
}
