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

// AppRepositoryInterface owns the first-run seeding policy and full resets.
type AppRepositoryInterface interface {
	Initialize(ctx context.Context) error
	IsInitialized(ctx context.Context) bool
	ClearSession(ctx context.Context) error
}

// AppRepository seeds the catalog on first run and clears session slices on
// reset. Seeding is guarded by an initialization marker so calling
// Initialize twice never duplicates data.
type AppRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewAppRepository creates a new AppRepository with the given store and logger
func NewAppRepository(store kvstore.Store, logger *logger.Logger) *AppRepository {
	return &AppRepository{
		logger: logger.WithComponent("app_repository"),
		store:  store,
	}
}

// Initialize seeds default catalog data, an empty cart and an empty
// favorites list in one batched durable write, then sets the marker.
// Idempotent: a second call sees the marker and does nothing.
func (r *AppRepository) Initialize(ctx context.Context) error {
	if r.IsInitialized(ctx) {
		r.logger.Debug("App data already initialized, skipping seed")
		return nil
	}

	r.logger.Info("First run detected, seeding app data",
		"categories", len(models.SeedCategories),
		"products", len(models.SeedProducts))

	categoriesJSON, err := json.Marshal(models.SeedCategories)
	if err != nil {
		return fmt.Errorf("failed to serialize seed categories: %v", err)
	}

	productsJSON, err := json.Marshal(models.SeedProducts)
	if err != nil {
		return fmt.Errorf("failed to serialize seed products: %v", err)
	}

	pairs := map[string]string{
		KeyCategories:  string(categoriesJSON),
		KeyProducts:    string(productsJSON),
		KeyCart:        "[]",
		KeyFavorites:   "[]",
		KeyInitialized: "true",
	}

	if err := r.store.MultiSet(ctx, pairs); err != nil {
		r.logger.Error("Failed to seed app data", "error", err)
		return fmt.Errorf("failed to seed app data: %v", err)
	}

	r.logger.Info("App data seeded successfully")
	return nil
}

// IsInitialized reports whether the initialization marker is present.
// Never returns an error: a failed read counts as not initialized.
func (r *AppRepository) IsInitialized(ctx context.Context) bool {
	value, err := r.store.Get(ctx, KeyInitialized)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Warn("Failed to read initialization marker", "error", err)
		}
		return false
	}
	return value == "true"
}

// ClearSession removes the cart, favorites and user slices, leaving the
// catalog and theme untouched.
func (r *AppRepository) ClearSession(ctx context.Context) error {
	r.logger.Info("Clearing session data")

	if err := r.store.MultiRemove(ctx, KeyCart, KeyFavorites, KeyUser); err != nil {
		r.logger.Error("Failed to clear session data", "error", err)
		return fmt.Errorf("failed to clear session data: %v", err)
	}

	return nil
}
