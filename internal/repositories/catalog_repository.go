package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

// CatalogRepositoryInterface reads the seeded catalog. The catalog is
// read-only after seeding.
type CatalogRepositoryInterface interface {
	GetCategories(ctx context.Context) []models.Category
	GetProducts(ctx context.Context) []models.Product
}

type CatalogRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewCatalogRepository creates a new CatalogRepository with the given store and logger
func NewCatalogRepository(store kvstore.Store, logger *logger.Logger) *CatalogRepository {
	return &CatalogRepository{
		logger: logger.WithComponent("catalog_repository"),
		store:  store,
	}
}

// GetCategories returns the seeded categories, or an empty slice when the
// key is missing or the stored value fails to parse.
func (r *CatalogRepository) GetCategories(ctx context.Context) []models.Category {
	data, err := r.store.Get(ctx, KeyCategories)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("Failed to read categories", "error", err)
		}
		return []models.Category{}
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(data), &categories); err != nil {
		r.logger.Error("Failed to parse stored categories, degrading to empty", "error", err)
		return []models.Category{}
	}

	return categories
}

// GetProducts returns the seeded products, or an empty slice when the key is
// missing or the stored value fails to parse.
func (r *CatalogRepository) GetProducts(ctx context.Context) []models.Product {
	data, err := r.store.Get(ctx, KeyProducts)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("Failed to read products", "error", err)
		}
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		r.logger.Error("Failed to parse stored products, degrading to empty", "error", err)
		return []models.Product{}
	}

	return products
}
