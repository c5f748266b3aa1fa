package repositories

// Storage keys. Each repository owns its slice of keys exclusively; no two
// repositories write the same key.
const (
	KeyCategories  = "@coffee_app_categories"
	KeyProducts    = "@coffee_app_products"
	KeyCart        = "@coffee_app_cart"
	KeyFavorites   = "@coffee_app_favorites"
	KeyUser        = "@coffee_app_user"
	KeyInitialized = "@coffee_app_initialized"
	KeyOnboarding  = "@coffee_shop_onboarding_complete"
	KeyTheme       = "@coffee_app_theme"
)
