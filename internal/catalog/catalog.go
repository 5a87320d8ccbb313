package catalog

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryClothes   Category = "clothes"
	CategoryCosmetics Category = "cosmetics"
	CategoryJewelry   Category = "jewelry"
)

// Subcategories are scoped to a category; subcategoriesByCategory is the
// source of truth for which combinations are valid.
type Subcategory string

const (
	SubcategoryDresses         Subcategory = "dresses"
	SubcategoryTops            Subcategory = "tops"
	SubcategoryPants           Subcategory = "pants"
	SubcategoryTraditionalWear Subcategory = "traditional wear"

	SubcategoryMakeup     Subcategory = "makeup"
	SubcategorySkincare   Subcategory = "skincare"
	SubcategoryFragrances Subcategory = "fragrances"

	SubcategoryNecklaces Subcategory = "necklaces"
	SubcategoryEarrings  Subcategory = "earrings"
	SubcategoryBracelets Subcategory = "bracelets"
	SubcategoryRings     Subcategory = "rings"
)

var subcategoriesByCategory = map[Category][]Subcategory{
	CategoryClothes:   {SubcategoryDresses, SubcategoryTops, SubcategoryPants, SubcategoryTraditionalWear},
	CategoryCosmetics: {SubcategoryMakeup, SubcategorySkincare, SubcategoryFragrances},
	CategoryJewelry:   {SubcategoryNecklaces, SubcategoryEarrings, SubcategoryBracelets, SubcategoryRings},
}

func ValidCategory(c Category) bool {
	_, ok := subcategoriesByCategory[c]
	return ok
}

func ValidSubcategory(c Category, s Subcategory) bool {
	for _, sub := range subcategoriesByCategory[c] {
		if sub == s {
			return true
		}
	}
	return false
}

type Variant struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    Category        `json:"category"`
	Subcategory Subcategory     `json:"subcategory"`
	Sizes       []string        `json:"sizes,omitempty"`
	Variants    []Variant       `json:"variants,omitempty"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured,omitempty"`
	IsNew       bool            `json:"isNew,omitempty"`
}

// HasSize reports whether s is one of the product's offered sizes.
func (p Product) HasSize(s string) bool {
	for _, size := range p.Sizes {
		if size == s {
			return true
		}
	}
	return false
}

// VariantByID returns the matching variant, if any.
func (p Product) VariantByID(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
