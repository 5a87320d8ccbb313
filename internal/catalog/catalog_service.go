package catalog

import "strings"

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	All() []Product
	ByID(id string) (Product, error)
	ByCategory(category Category) ([]Product, error)
	BySubcategory(category Category, subcategory Subcategory) ([]Product, error)
	Search(query string) []Product
	Featured() []Product
	NewArrivals() []Product
}

type service struct {
	products []Product
	byID     map[string]Product
}

func NewService(products []Product) Service {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &service{
		products: products,
		byID:     byID,
	}
}

func (s *service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) ByID(id string) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ByCategory(category Category) ([]Product, error) {
	if !ValidCategory(category) {
		return nil, ErrCategoryNotFound
	}

	out := make([]Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) BySubcategory(category Category, subcategory Subcategory) ([]Product, error) {
	if !ValidCategory(category) {
		return nil, ErrCategoryNotFound
	}
	if !ValidSubcategory(category, subcategory) {
		return nil, ErrCategoryNotFound
	}

	out := make([]Product, 0)
	for _, p := range s.products {
		if p.Category == category && p.Subcategory == subcategory {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search matches a case-insensitive substring against name and description.
func (s *service) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Product{}
	}

	out := make([]Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) Featured() []Product {
	out := make([]Product, 0)
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) NewArrivals() []Product {
	out := make([]Product, 0)
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}
