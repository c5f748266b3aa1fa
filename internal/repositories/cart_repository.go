package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

// CartRepositoryInterface persists the full cart list as one record.
type CartRepositoryInterface interface {
	GetCart(ctx context.Context) []models.CartItem
	SaveCart(ctx context.Context, items []models.CartItem) error
}

type CartRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewCartRepository creates a new CartRepository with the given store and logger
func NewCartRepository(store kvstore.Store, logger *logger.Logger) *CartRepository {
	return &CartRepository{
		logger: logger.WithComponent("cart_repository"),
		store:  store,
	}
}

// GetCart returns the persisted cart, or an empty slice when the key is
// missing or the stored value fails to parse.
func (r *CartRepository) GetCart(ctx context.Context) []models.CartItem {
	data, err := r.store.Get(ctx, KeyCart)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("Failed to read cart", "error", err)
		}
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		r.logger.Error("Failed to parse stored cart, degrading to empty", "error", err)
		return []models.CartItem{}
	}

	return items
}

// SaveCart serializes and persists the full cart list. Write failures
// propagate to the caller; the caller's in-memory state has already changed.
func (r *CartRepository) SaveCart(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %v", err)
	}

	if err := r.store.Set(ctx, KeyCart, string(data)); err != nil {
		r.logger.Error("Failed to persist cart", "error", err, "items", len(items))
		return fmt.Errorf("failed to persist cart: %v", err)
	}

	r.logger.Debug("Cart persisted", "items", len(items))
	return nil
}
