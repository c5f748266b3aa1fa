package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

// FavoritesRepositoryInterface persists the ordered list of favorited
// product ids as one record.
type FavoritesRepositoryInterface interface {
	GetFavorites(ctx context.Context) []string
	SaveFavorites(ctx context.Context, ids []string) error
}

type FavoritesRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewFavoritesRepository creates a new FavoritesRepository with the given store and logger
func NewFavoritesRepository(store kvstore.Store, logger *logger.Logger) *FavoritesRepository {
	return &FavoritesRepository{
		logger: logger.WithComponent("favorites_repository"),
		store:  store,
	}
}

// GetFavorites returns the persisted favorite product ids, or an empty slice
// when the key is missing or the stored value fails to parse.
func (r *FavoritesRepository) GetFavorites(ctx context.Context) []string {
	data, err := r.store.Get(ctx, KeyFavorites)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("Failed to read favorites", "error", err)
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		r.logger.Error("Failed to parse stored favorites, degrading to empty", "error", err)
		return []string{}
	}

	return ids
}

// SaveFavorites serializes and persists the full favorites list.
func (r *FavoritesRepository) SaveFavorites(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %v", err)
	}

	if err := r.store.Set(ctx, KeyFavorites, string(data)); err != nil {
		r.logger.Error("Failed to persist favorites", "error", err, "count", len(ids))
		return fmt.Errorf("failed to persist favorites: %v", err)
	}

	r.logger.Debug("Favorites persisted", "count", len(ids))
	return nil
}
