package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Categories returns the cafe's category list. Static reference data,
// immutable after load.
func Categories() []Category {
	return []Category{
		{ID: "1", Name: "Hot Drinks"},
		{ID: "2", Name: "Cold Drinks"},
		{ID: "3", Name: "Pastries"},
		{ID: "4", Name: "Sandwiches"},
		{ID: "5", Name: "Desserts"},
	}
}

// Items returns the built-in cafe menu served by the POS terminal.
func Items() []MenuItem {
	drinkSizes := []Variant{
		{ID: "v1", Name: "Small", PriceDelta: price("0")},
		{ID: "v2", Name: "Medium", PriceDelta: price("0.50")},
		{ID: "v3", Name: "Large", PriceDelta: price("1.00")},
	}

	return []MenuItem{
		{
			ID: "101", Name: "Cappuccino", BasePrice: price("4.50"),
			CategoryID: "1", Image: "/images/cappuccino.jpg", Variants: drinkSizes,
		},
		{
			ID: "102", Name: "Latte", BasePrice: price("4.00"),
			CategoryID: "1", Image: "/images/latte.jpg", Variants: drinkSizes,
		},
		{
			ID: "103", Name: "Espresso", BasePrice: price("3.00"),
			CategoryID: "1", Image: "/images/espresso.jpg",
			Variants: []Variant{
				{ID: "v1", Name: "Single", PriceDelta: price("0")},
				{ID: "v2", Name: "Double", PriceDelta: price("1.50")},
			},
		},
		{
			ID: "201", Name: "Iced Coffee", BasePrice: price("4.50"),
			CategoryID: "2", Image: "/images/iced-coffee.jpg", Variants: drinkSizes,
		},
		{
			ID: "202", Name: "Iced Tea", BasePrice: price("3.50"),
			CategoryID: "2", Image: "/images/iced-tea.jpg", Variants: drinkSizes,
		},
		{
			ID: "301", Name: "Croissant", BasePrice: price("3.50"),
			CategoryID: "3", Image: "/images/croissant.jpg",
		},
		{
			ID: "302", Name: "Pain au Chocolat", BasePrice: price("4.00"),
			CategoryID: "3", Image: "/images/pain-au-chocolat.jpg",
		},
		{
			ID: "401", Name: "Chicken Sandwich", BasePrice: price("6.50"),
			CategoryID: "4", Image: "/images/chicken-sandwich.jpg",
		},
		{
			ID: "402", Name: "Veggie Sandwich", BasePrice: price("5.50"),
			CategoryID: "4", Image: "/images/veggie-sandwich.jpg",
		},
		{
			ID: "501", Name: "Chocolate Cake", BasePrice: price("5.00"),
			CategoryID: "5", Image: "/images/chocolate-cake.jpg",
		},
		{
			ID: "502", Name: "Cheesecake", BasePrice: price("5.50"),
			CategoryID: "5", Image: "/images/cheesecake.jpg",
		},
	}
}
