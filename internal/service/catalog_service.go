package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"coffeecorner/internal/repositories"
	"coffeecorner/models"
	"coffeecorner/pkg/logger"
)

// CatalogServiceInterface exposes the seeded catalog with the filter, search
// and sort operations the storefront needs. Read-only after loading.
type CatalogServiceInterface interface {
	Load(ctx context.Context)
	Categories() []models.Category
	Products() []models.Product
	ProductByID(id string) (models.Product, error)
	ProductsByCategory(categoryID string) []models.Product
	SpecialOffers() []models.Product
	SearchProducts(query string) []models.Product
	SortProducts(products []models.Product, option models.SortOption) []models.Product
	ComposeCartItem(productID string, size models.Size, sugar models.Sugar, quantity int) (models.CartItem, error)
}

// CatalogService caches the seeded catalog in memory; the catalog never
// changes after seeding so a single load suffices.
type CatalogService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *logger.Logger

	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
}

// NewCatalogService creates a new CatalogService with the given repository and logger
func NewCatalogService(catalogRepo repositories.CatalogRepositoryInterface, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger.WithComponent("catalog_service"),
	}
}

// Load reads the seeded catalog into memory.
func (s *CatalogService) Load(ctx context.Context) {
	categories := s.catalogRepo.GetCategories(ctx)
	products := s.catalogRepo.GetProducts(ctx)

	s.mu.Lock()
	s.categories = categories
	s.products = products
	s.mu.Unlock()

	s.logger.Info("Catalog loaded", "categories", len(categories), "products", len(products))
}

// Categories returns all categories, including the "All" sentinel.
func (s *CatalogService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// Products returns all products.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ProductByID looks a product up by id.
func (s *CatalogService) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s not found", id)
}

// ProductsByCategory filters products by category id. The "All" sentinel
// matches everything.
func (s *CatalogService) ProductsByCategory(categoryID string) []models.Product {
	if categoryID == models.AllCategoryID {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := []models.Product{}
	for _, product := range s.products {
		if product.CategoryID == categoryID {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// SpecialOffers returns the products flagged as special offers.
func (s *CatalogService) SpecialOffers() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offers := []models.Product{}
	for _, product := range s.products {
		if product.IsSpecialOffer {
			offers = append(offers, product)
		}
	}
	return offers
}

// SearchProducts matches the query case-insensitively against product name
// and description. A blank query returns all products.
func (s *CatalogService) SearchProducts(query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Product{}
	for _, product := range s.products {
		if strings.Contains(strings.ToLower(product.Name), query) ||
			strings.Contains(strings.ToLower(product.Description), query) {
			matched = append(matched, product)
		}
	}
	return matched
}

// SortProducts returns a sorted copy of products. The default option keeps
// the incoming order.
func (s *CatalogService) SortProducts(products []models.Product, option models.SortOption) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch option {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}

	return sorted
}

// ComposeCartItem builds the denormalized cart line for a product: the price
// is snapshotted as the product price plus the size surcharge at this
// moment, and is never refreshed afterwards.
func (s *CatalogService) ComposeCartItem(productID string, size models.Size, sugar models.Sugar, quantity int) (models.CartItem, error) {
	if !size.Valid() {
		return models.CartItem{}, fmt.Errorf("unknown size %q", size)
	}
	if !sugar.Valid() {
		return models.CartItem{}, fmt.Errorf("unknown sugar level %q", sugar)
	}
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.ProductByID(productID)
	if err != nil {
		return models.CartItem{}, err
	}

	return models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price + size.PriceModifier(),
		Image:     product.Image,
		Quantity:  quantity,
		Size:      size,
		Sugar:     sugar,
	}, nil
}
