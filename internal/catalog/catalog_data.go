package catalog

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Seed returns the static product records the storefront sells.
func Seed() []Product {
	return []Product{
		{
			ID:          "dress-1",
			Name:        "Pocket Burkha",
			Description: "Very comfortable fabric pocket burkha. Embroidered on the sleeves and bottom. (Bangi color)\nLength 52\nFree size",
			Price:       price(680),
			Images: []string{
				"https://i.postimg.cc/nz0vDqSY/fe7f4d7d-7836-4b97-9645-f75d474bf48a.png",
				"https://i.postimg.cc/wT6Dk4Y5/86873c52-2e96-4bab-a4db-6c7d357202a2.png",
			},
			Category:    CategoryClothes,
			Subcategory: SubcategoryDresses,
			Rating:      4.6,
			ReviewCount: 24,
			InStock:     true,
			Featured:    true,
			IsNew:       true,
		},
		{
			ID:          "dress-2",
			Name:        "Jorjet 4-piece set",
			Description: "Jorjet 4-piece set. Kameez made of georgette fabric with all-over embroidery and sequin work. Original Indian butter fabric salwar.",
			Price:       price(1600),
			Images: []string{
				"https://i.postimg.cc/02w9TsfS/0fc4e315-c54b-4e54-b220-f3a8b9afac76.png",
				"https://i.postimg.cc/NMZjXfDg/e7c1fd97-23e5-4189-95ed-40220e725673.png",
			},
			Category:    CategoryClothes,
			Subcategory: SubcategoryDresses,
			Variants: []Variant{
				{ID: "black", Name: "Black"},
				{ID: "green", Name: "Green"},
			},
			Rating:      4.8,
			ReviewCount: 12,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "dress-3",
			Name:        "Casual T-shirt Dress",
			Description: "A comfortable and versatile t-shirt dress perfect for everyday wear. Features a relaxed fit and soft cotton fabric.",
			Price:       price(1299),
			Images: []string{
				"https://images.pexels.com/photos/8386598/pexels-photo-8386598.jpeg",
			},
			Category:    CategoryClothes,
			Subcategory: SubcategoryDresses,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Rating:      4.3,
			ReviewCount: 37,
			InStock:     true,
		},
		{
			ID:          "top-1",
			Name:        "Silk Blouse",
			Description: "An elegant silk blouse that transitions effortlessly from day to night.",
			Price:       price(1599),
			Images: []string{
				"https://images.pexels.com/photos/6311392/pexels-photo-6311392.jpeg",
			},
			Category:    CategoryClothes,
			Subcategory: SubcategoryTops,
			Sizes:       []string{"XS", "S", "M", "L"},
			Rating:      4.5,
			ReviewCount: 19,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "top-2",
			Name:        "Casual Cotton Tee",
			Description: "A soft, breathable cotton tee for everyday comfort.",
			Price:       price(699),
			Images: []string{
				"https://images.pexels.com/photos/6311475/pexels-photo-6311475.jpeg",
			},
			Category:    CategoryClothes,
			Subcategory: SubcategoryTops,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Rating:      4.2,
			ReviewCount: 45,
			InStock:     true,
		},
		{
			ID:          "necklace-1",
			Name:        "Simple Round Earings",
			Description: "A delicate round earring set that adds elegance to any outfit.",
			Price:       price(50),
			Images: []string{
				"https://images.pexels.com/photos/10964788/pexels-photo-10964788.jpeg",
			},
			Category:    CategoryJewelry,
			Subcategory: SubcategoryNecklaces,
			Rating:      4.9,
			ReviewCount: 32,
			InStock:     true,
			Featured:    true,
			IsNew:       true,
		},
		{
			ID:          "earrings-1",
			Name:        "Crystal Drop Earrings",
			Description: "Stunning crystal drop earrings that catch the light beautifully.",
			Price:       price(899),
			Images: []string{
				"https://images.pexels.com/photos/12026051/pexels-photo-12026051.jpeg",
			},
			Category:    CategoryJewelry,
			Subcategory: SubcategoryEarrings,
			Rating:      4.7,
			ReviewCount: 18,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "bracelet-1",
			Name:        "Gold Chain Bracelet",
			Description: "A timeless gold chain bracelet with an adjustable clasp.",
			Price:       price(1599),
			Images: []string{
				"https://images.pexels.com/photos/9428868/pexels-photo-9428868.jpeg",
			},
			Category:    CategoryJewelry,
			Subcategory: SubcategoryBracelets,
			Rating:      4.6,
			ReviewCount: 14,
			InStock:     true,
		},
		{
			ID:          "makeup-1",
			Name:        "YC Whitening Facewash",
			Description: "A gentle whitening facewash suitable for daily use.",
			Price:       price(200),
			Images: []string{
				"https://images.pexels.com/photos/2533266/pexels-photo-2533266.jpeg",
			},
			Category:    CategoryCosmetics,
			Subcategory: SubcategoryMakeup,
			Variants: []Variant{
				{ID: "lip-1-rose", Name: "Rose Petal"},
				{ID: "lip-1-coral", Name: "Coral Sunset"},
				{ID: "lip-1-red", Name: "Classic Red"},
			},
			Rating:      4.4,
			ReviewCount: 65,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "skincare-1",
			Name:        "Beauty Glazed & Tea tree nose pore strips",
			Description: "Deep cleansing nose pore strips with tea tree extract.",
			Price:       price(40),
			Images: []string{
				"https://images.pexels.com/photos/3785147/pexels-photo-3785147.jpeg",
			},
			Category:    CategoryCosmetics,
			Subcategory: SubcategorySkincare,
			Rating:      4.8,
			ReviewCount: 42,
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          "fragrance-1",
			Name:        "Floral Eau de Parfum",
			Description: "A romantic floral fragrance with notes of jasmine and rose.",
			Price:       price(1799),
			Images: []string{
				"https://images.pexels.com/photos/965990/pexels-photo-965990.jpeg",
			},
			Category:    CategoryCosmetics,
			Subcategory: SubcategoryFragrances,
			Rating:      4.7,
			ReviewCount: 29,
			InStock:     true,
			Featured:    true,
		},
	}
}
