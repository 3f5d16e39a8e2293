package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

// MemoryStore implements CatalogStore with in-memory storage. Products and
// categories are independent collections, each behind its own lock, so
// catalog readers never contend with category writers and vice versa.
type MemoryStore struct {
	pmu      sync.RWMutex
	products []domain.Product

	cmu        sync.RWMutex
	categories []domain.Category
	// nextCategoryID only ever grows, so category ids are never reused
	// even after the highest-numbered category is deleted
	nextCategoryID int64
}

// NewMemoryStore creates an empty in-memory catalog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Products returns every product in insertion order
func (s *MemoryStore) Products() []domain.Product {
	s.pmu.RLock()
	defer s.pmu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product returns the product with the given id
func (s *MemoryStore) Product(id int64) (domain.Product, error) {
	s.pmu.RLock()
	defer s.pmu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// ProductsByCategory returns all products whose category matches
func (s *MemoryStore) ProductsByCategory(categoryID int64) []domain.Product {
	s.pmu.RLock()
	defer s.pmu.RUnlock()

	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts matches term against name or description, case-insensitively.
// A blank term returns the full list unfiltered.
func (s *MemoryStore) SearchProducts(term string) []domain.Product {
	if strings.TrimSpace(term) == "" {
		return s.Products()
	}

	s.pmu.RLock()
	defer s.pmu.RUnlock()

	needle := strings.ToLower(term)
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct assigns id = max existing + 1 (1 if empty) and appends
func (s *MemoryStore) CreateProduct(p domain.Product) (domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Product{}, ErrNameRequired
	}
	if p.Price < 0 {
		return domain.Product{}, ErrNegativePrice
	}

	s.pmu.Lock()
	defer s.pmu.Unlock()

	p.ID = s.nextProductID()
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct overwrites the mutable fields of an existing product in place
func (s *MemoryStore) UpdateProduct(id int64, p domain.Product) (domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Product{}, ErrNameRequired
	}
	if p.Price < 0 {
		return domain.Product{}, ErrNegativePrice
	}

	s.pmu.Lock()
	defer s.pmu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = p.Name
			s.products[i].Description = p.Description
			s.products[i].CategoryID = p.CategoryID
			s.products[i].Price = p.Price
			s.products[i].ImageURL = p.ImageURL
			s.products[i].Quantity = p.Quantity
			return s.products[i], nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// DeleteProduct removes the product with the given id
func (s *MemoryStore) DeleteProduct(id int64) error {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// nextProductID must be called with pmu held
func (s *MemoryStore) nextProductID() int64 {
	var max int64
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Categories returns every category in insertion order
func (s *MemoryStore) Categories() []domain.Category {
	s.cmu.RLock()
	defer s.cmu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Category returns the category with the given id
func (s *MemoryStore) Category(id int64) (domain.Category, error) {
	s.cmu.RLock()
	defer s.cmu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Category{}, ErrCategoryNotFound
}

// SearchCategories matches term against name or description, case-insensitively
func (s *MemoryStore) SearchCategories(term string) []domain.Category {
	if strings.TrimSpace(term) == "" {
		return s.Categories()
	}

	s.cmu.RLock()
	defer s.cmu.RUnlock()

	needle := strings.ToLower(term)
	out := make([]domain.Category, 0)
	for _, c := range s.categories {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			out = append(out, c)
		}
	}
	return out
}

// CategoriesByDate returns categories sorted by CreatedOn, newest first
// unless ascending is set
func (s *MemoryStore) CategoriesByDate(ascending bool) []domain.Category {
	out := s.Categories()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedOn.Before(out[j].CreatedOn)
		}
		return out[i].CreatedOn.After(out[j].CreatedOn)
	})
	return out
}

// CreateCategory assigns id = max existing + 1 and stamps CreatedOn
func (s *MemoryStore) CreateCategory(c domain.Category) (domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return domain.Category{}, ErrNameRequired
	}

	s.cmu.Lock()
	defer s.cmu.Unlock()

	var max int64
	for _, existing := range s.categories {
		if existing.ID > max {
			max = existing.ID
		}
	}
	if s.nextCategoryID <= max {
		s.nextCategoryID = max + 1
	}
	c.ID = s.nextCategoryID
	s.nextCategoryID++
	c.CreatedOn = time.Now().UTC()
	s.categories = append(s.categories, c)
	return c, nil
}

// UpdateCategory overwrites name and description; CreatedOn never changes
func (s *MemoryStore) UpdateCategory(id int64, c domain.Category) (domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return domain.Category{}, ErrNameRequired
	}

	s.cmu.Lock()
	defer s.cmu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = c.Name
			s.categories[i].Description = c.Description
			return s.categories[i], nil
		}
	}
	return domain.Category{}, ErrCategoryNotFound
}

// DeleteCategory removes the category with the given id
func (s *MemoryStore) DeleteCategory(id int64) error {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}
