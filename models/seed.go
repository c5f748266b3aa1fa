package models

import "math/rand"

// SeedCategories is the fixed category catalog written on first run.
// The "All" entry is the filter sentinel, not a real category.
var SeedCategories = []Category{
	{ID: "1", Name: "All", Icon: "☕", Image: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=200"},
	{ID: "2", Name: "Espresso", Icon: "☕", Image: "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=200"},
	{ID: "3", Name: "Latte", Icon: "🥛", Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=200"},
	{ID: "4", Name: "Cappuccino", Icon: "☕", Image: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=200"},
	{ID: "5", Name: "Mocha", Icon: "🍫", Image: "https://images.unsplash.com/photo-1578314675249-a6910f80cc4e?w=200"},
	{ID: "6", Name: "Cold Brew", Icon: "🧊", Image: "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=200"},
	{ID: "7", Name: "Frappe", Icon: "🥤", Image: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=200"},
	{ID: "8", Name: "Tea", Icon: "🍵", Image: "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=200"},
}

// SeedProducts is the fixed product catalog written on first run.
var SeedProducts = []Product{
	{ID: "1", Name: "Classic Espresso", Price: 3.5, Image: "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=400", Description: "Rich and bold single shot espresso made from premium Arabica beans.", CategoryID: "2", Rating: 4.8},
	{ID: "2", Name: "Double Espresso", Price: 4.0, Image: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400", Description: "Intense double shot for the true coffee lover.", CategoryID: "2", Rating: 4.9},
	{ID: "3", Name: "Vanilla Latte", Price: 4.5, Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400", Description: "Smooth espresso with steamed milk and vanilla syrup.", CategoryID: "3", Rating: 4.7},
	{ID: "4", Name: "Caramel Latte", Price: 4.8, Image: "https://images.unsplash.com/photo-1485808191679-5f86510681a2?w=400", Description: "Sweet caramel blended with espresso and creamy milk.", CategoryID: "3", Rating: 4.8},
	{ID: "5", Name: "Hazelnut Latte", Price: 4.9, Image: "https://images.unsplash.com/photo-1534778101976-62847782c213?w=400", Description: "Nutty hazelnut flavor with smooth espresso and milk.", CategoryID: "3", Rating: 4.6},
	{ID: "6", Name: "Classic Cappuccino", Price: 4.2, Image: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400", Description: "Perfect balance of espresso, steamed milk, and foam.", CategoryID: "4", Rating: 4.9},
	{ID: "7", Name: "Cinnamon Cappuccino", Price: 4.5, Image: "https://images.unsplash.com/photo-1557006021-b85faa2bc5e2?w=400", Description: "Warm cinnamon spice on a classic cappuccino.", CategoryID: "4", Rating: 4.5},
	{ID: "8", Name: "Classic Mocha", Price: 4.7, Image: "https://images.unsplash.com/photo-1578314675249-a6910f80cc4e?w=400", Description: "Rich chocolate meets bold espresso with steamed milk.", CategoryID: "5", Rating: 4.8},
	{ID: "9", Name: "White Mocha", Price: 5.0, Image: "https://images.unsplash.com/photo-1592318951566-70f6f0ac3de8?w=400", Description: "Sweet white chocolate with espresso and milk.", CategoryID: "5", Rating: 4.7},
	{ID: "10", Name: "Classic Cold Brew", Price: 3.8, Image: "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=400", Description: "Slow-steeped for 20 hours for smooth, bold flavor.", CategoryID: "6", Rating: 4.9},
	{ID: "11", Name: "Vanilla Cold Brew", Price: 4.3, Image: "https://images.unsplash.com/photo-1578314675249-a6910f80cc4e?w=400", Description: "Cold brew with a hint of vanilla sweetness.", CategoryID: "6", Rating: 4.6},
	{ID: "12", Name: "Caramel Frappe", Price: 4.8, Image: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400", Description: "Blended ice coffee with caramel and whipped cream.", CategoryID: "7", Rating: 4.8},
	{ID: "13", Name: "Mocha Frappe", Price: 5.0, Image: "https://images.unsplash.com/photo-1530373239216-42518e6b4063?w=400", Description: "Chocolate and coffee blended with ice.", CategoryID: "7", Rating: 4.7},
	{ID: "14", Name: "Chai Latte", Price: 4.0, Image: "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400", Description: "Spiced chai tea with steamed milk.", CategoryID: "8", Rating: 4.6},
	{ID: "15", Name: "Matcha Latte", Price: 4.5, Image: "https://images.unsplash.com/photo-1536256263959-770b48d82b0a?w=400", Description: "Premium Japanese matcha with creamy milk.", CategoryID: "8", Rating: 4.8},
	{ID: "16", Name: "Seasonal Pumpkin Spice", Price: 4.9, Image: "https://images.unsplash.com/photo-1574914629385-46e6936e9256?w=400", Description: "Limited edition pumpkin spice latte with real pumpkin.", CategoryID: "3", Rating: 4.9, IsSpecialOffer: true},
	{ID: "17", Name: "Honey Lavender Latte", Price: 4.7, Image: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400", Description: "Floral lavender with sweet honey and espresso.", CategoryID: "3", Rating: 4.7, IsSpecialOffer: true},
	{ID: "18", Name: "Americano", Price: 3.0, Image: "https://images.unsplash.com/photo-1551030173-122aabc4489c?w=400", Description: "Espresso diluted with hot water for a smooth taste.", CategoryID: "2", Rating: 4.5},
	{ID: "19", Name: "Iced Caramel Macchiato", Price: 4.6, Image: "https://images.unsplash.com/photo-1553909489-ec3175e5e0c5?w=400", Description: "Vanilla, milk, espresso, and caramel drizzle over ice.", CategoryID: "3", Rating: 4.8},
	{ID: "20", Name: "Green Tea Latte", Price: 4.2, Image: "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=400", Description: "Earthy green tea blended with steamed milk.", CategoryID: "8", Rating: 4.4},
}

// AvatarPool is the fixed set of profile pictures assigned on login.
var AvatarPool = []string{
	"https://i.pravatar.cc/150?img=1",
	"https://i.pravatar.cc/150?img=2",
	"https://i.pravatar.cc/150?img=3",
	"https://i.pravatar.cc/150?img=4",
	"https://i.pravatar.cc/150?img=5",
}

// RandomAvatar picks an avatar from the pool.
func RandomAvatar() string {
	return AvatarPool[rand.Intn(len(AvatarPool))]
}
