package service

import (
	"context"
	"sync"

	"coffeecorner/internal/repositories"
	"coffeecorner/pkg/logger"
)

// FavoritesServiceInterface owns the ordered set of favorited product ids.
type FavoritesServiceInterface interface {
	Load(ctx context.Context)
	FavoriteIDs() []string
	IsFavorite(productID string) bool
	ToggleFavorite(ctx context.Context, productID string) (bool, error)
	IsLoading() bool
	OnChange(fn func())
}

// FavoritesService holds the authoritative in-memory favorites list with set
// semantics: toggle appends on absence and removes on presence, keeping
// insertion order for stable iteration.
type FavoritesService struct {
	favoritesRepo repositories.FavoritesRepositoryInterface
	logger        *logger.Logger

	mu        sync.RWMutex
	ids       []string
	loading   bool
	listeners []func()
}

// NewFavoritesService creates a new FavoritesService with the given repository and logger
func NewFavoritesService(favoritesRepo repositories.FavoritesRepositoryInterface, logger *logger.Logger) *FavoritesService {
	return &FavoritesService{
		favoritesRepo: favoritesRepo,
		logger:        logger.WithComponent("favorites_service"),
		loading:       true,
	}
}

// Load reads the persisted favorites into memory.
func (s *FavoritesService) Load(ctx context.Context) {
	ids := s.favoritesRepo.GetFavorites(ctx)

	s.mu.Lock()
	s.ids = ids
	s.loading = false
	s.mu.Unlock()

	s.logger.Info("Favorites loaded", "count", len(ids))
	s.notify()
}

// FavoriteIDs returns a copy of the favorited product ids in insertion order.
func (s *FavoritesService) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// IsFavorite is a pure membership test against the in-memory set. It
// reflects the latest toggle synchronously, even before persistence resolves.
func (s *FavoritesService) IsFavorite(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// IsLoading reports whether the initial load is still in flight.
func (s *FavoritesService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ToggleFavorite flips membership for the product id and persists the
// resulting list. Returns the new membership state.
func (s *FavoritesService) ToggleFavorite(ctx context.Context, productID string) (bool, error) {
	s.mu.Lock()
	found := false
	filtered := s.ids[:0]
	for _, id := range s.ids {
		if id == productID {
			found = true
			continue
		}
		filtered = append(filtered, id)
	}
	if found {
		s.ids = filtered
	} else {
		s.ids = append(s.ids, productID)
	}
	favorited := !found
	snapshot := make([]string, len(s.ids))
	copy(snapshot, s.ids)
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Favorite toggled", "product_id", productID, "favorited", favorited)

	if err := s.favoritesRepo.SaveFavorites(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist favorites, memory state retained", "error", err)
		return favorited, err
	}
	return favorited, nil
}

// OnChange registers a listener invoked after every in-memory commit,
// before persistence resolves.
func (s *FavoritesService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *FavoritesService) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
