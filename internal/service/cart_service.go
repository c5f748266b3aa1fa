package service

import (
	"context"
	"sync"

	"coffeecorner/internal/repositories"
	"coffeecorner/models"
	"coffeecorner/pkg/logger"

	"github.com/google/uuid"
)

// CartServiceInterface owns the cart line items and their derived totals.
type CartServiceInterface interface {
	Load(ctx context.Context)
	Items() []models.CartItem
	ItemCount() int
	Subtotal() float64
	IsLoading() bool
	AddItem(ctx context.Context, item models.CartItem) (models.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	RemoveItem(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context) error
	OnChange(fn func())
}

// CartService holds the authoritative in-memory cart list. Mutations are
// serialized by the mutex, commit to memory first, notify listeners, then
// persist the full list. A persist failure never rolls the memory back.
type CartService struct {
	cartRepo repositories.CartRepositoryInterface
	logger   *logger.Logger

	mu        sync.RWMutex
	items     []models.CartItem
	loading   bool
	listeners []func()
}

// NewCartService creates a new CartService with the given repository and logger
func NewCartService(cartRepo repositories.CartRepositoryInterface, logger *logger.Logger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		logger:   logger.WithComponent("cart_service"),
		loading:  true,
	}
}

// Load reads the persisted cart into memory.
func (s *CartService) Load(ctx context.Context) {
	items := s.cartRepo.GetCart(ctx)

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()

	s.logger.Info("Cart loaded", "items", len(items))
	s.notify()
}

// Items returns a copy of the current cart entries.
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the sum of quantities across entries, recomputed per read.
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity across entries, recomputed
// per read.
func (s *CartService) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subtotal := 0.0
	for _, item := range s.items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// IsLoading reports whether the initial load is still in flight.
func (s *CartService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// AddItem adds a line item. When an entry with the same (product, size,
// sugar) triple exists, the quantities merge into that entry and every other
// field of it is retained, including the price snapshot from the first add.
// Otherwise the item is appended with a freshly generated id. The resulting
// full list is always persisted.
func (s *CartService) AddItem(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	s.mu.Lock()
	merged := false
	var result models.CartItem
	for i := range s.items {
		if s.items[i].SameSelection(item) {
			s.items[i].Quantity += item.Quantity
			result = s.items[i]
			merged = true
			break
		}
	}
	if !merged {
		item.ID = uuid.NewString()
		s.items = append(s.items, item)
		result = item
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Cart item added",
		"product_id", result.ProductID,
		"size", result.Size,
		"sugar", result.Sugar,
		"quantity", result.Quantity,
		"merged", merged)

	if err := s.cartRepo.SaveCart(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist cart add, memory state retained", "error", err)
		return result, err
	}
	return result, nil
}

// UpdateQuantity replaces an entry's quantity. A quantity of zero or less
// removes the entry instead. An unknown id leaves the list unchanged but
// still persists it.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	s.mu.Lock()
	if quantity <= 0 {
		filtered := s.items[:0]
		for _, item := range s.items {
			if item.ID != itemID {
				filtered = append(filtered, item)
			}
		}
		s.items = filtered
	} else {
		for i := range s.items {
			if s.items[i].ID == itemID {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Cart quantity updated", "item_id", itemID, "quantity", quantity)

	if err := s.cartRepo.SaveCart(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist quantity update, memory state retained", "error", err)
		return err
	}
	return nil
}

// RemoveItem filters the entry out and persists. Removing an id that is not
// present leaves the list unchanged.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Cart item removed", "item_id", itemID)

	if err := s.cartRepo.SaveCart(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist cart removal, memory state retained", "error", err)
		return err
	}
	return nil
}

// ClearCart empties the list and persists.
func (s *CartService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	s.items = []models.CartItem{}
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Cart cleared")

	if err := s.cartRepo.SaveCart(ctx, []models.CartItem{}); err != nil {
		s.logger.Error("Failed to persist cart clear, memory state retained", "error", err)
		return err
	}
	return nil
}

// OnChange registers a listener invoked after every in-memory commit,
// before persistence resolves.
func (s *CartService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *CartService) snapshotLocked() []models.CartItem {
	snapshot := make([]models.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *CartService) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
