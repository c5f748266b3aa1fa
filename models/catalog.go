package models

// Category is immutable seed data. The id "1" ("All") is a sentinel meaning
// "no category filter" and must be special-cased by every consumer that
// filters products by category.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}

// AllCategoryID is the sentinel category id that matches every product.
const AllCategoryID = "1"

// Product is immutable seed data identified by ID.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	Description    string  `json:"description"`
	CategoryID     string  `json:"categoryId"`
	Rating         float64 `json:"rating"`
	IsSpecialOffer bool    `json:"isSpecialOffer,omitempty"`
}

// SortOption controls product list ordering.
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
)
