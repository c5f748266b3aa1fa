package models

// Size is the cup size of a cart line item.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Sugar is the sugar level of a cart line item.
type Sugar string

const (
	SugarNone   Sugar = "No Sugar"
	SugarLow    Sugar = "Low"
	SugarMedium Sugar = "Medium"
)

// Valid reports whether s is one of the known cup sizes.
func (s Size) Valid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// Valid reports whether s is one of the known sugar levels.
func (s Sugar) Valid() bool {
	return s == SugarNone || s == SugarLow || s == SugarMedium
}

// PriceModifier returns the surcharge added to a product's base price for
// this cup size.
func (s Size) PriceModifier() float64 {
	switch s {
	case SizeMedium:
		return 0.50
	case SizeLarge:
		return 1.00
	default:
		return 0
	}
}

// CartItem is one line of the cart. Price is a snapshot of the product price
// plus the size modifier taken at add time, never refreshed from the catalog.
// ID is a generated token distinct from ProductID. No two entries in a cart
// may share the same (ProductID, Size, Sugar) triple; additions that would
// collide merge by summing quantity into the existing entry.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      Size    `json:"size"`
	Sugar     Sugar   `json:"sugar"`
}

// SameSelection reports whether other is the same product with the same
// size and sugar choices, i.e. the line-item merge key.
func (c CartItem) SameSelection(other CartItem) bool {
	return c.ProductID == other.ProductID && c.Size == other.Size && c.Sugar == other.Sugar
}
