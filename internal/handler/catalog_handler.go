package handler

import (
	"net/http"

	"coffeecorner/internal/service"
	"coffeecorner/models"
	"coffeecorner/pkg/logger"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
	logger         *logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler with the given service and logger
func NewCatalogHandler(catalogService service.CatalogServiceInterface, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger.WithComponent("catalog_handler"),
	}
}

// GetCategories handles GET /api/v1/catalog/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.catalogService.Categories())
}

// GetProducts handles GET /api/v1/catalog/products?category=&q=&sort=
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var products []models.Product
	if q := query.Get("q"); q != "" {
		products = h.catalogService.SearchProducts(q)
		if category := query.Get("category"); category != "" && category != models.AllCategoryID {
			filtered := products[:0]
			for _, p := range products {
				if p.CategoryID == category {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
	} else if category := query.Get("category"); category != "" {
		products = h.catalogService.ProductsByCategory(category)
	} else {
		products = h.catalogService.Products()
	}

	if sortOption := query.Get("sort"); sortOption != "" {
		products = h.catalogService.SortProducts(products, models.SortOption(sortOption))
	}

	writeJSONResponse(w, http.StatusOK, products)
}

// GetProductByID handles GET /api/v1/catalog/products/{id}
func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.catalogService.ProductByID(id)
	if err != nil {
		h.logger.Warn("Product not found", "product_id", id)
		writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, product)
}

// GetSpecialOffers handles GET /api/v1/catalog/special-offers
func (h *CatalogHandler) GetSpecialOffers(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.catalogService.SpecialOffers())
}
