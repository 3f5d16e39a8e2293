package store

import (
	"errors"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("name is required")
	ErrNegativePrice    = errors.New("price must not be negative")
)

// CatalogStore defines the interface for catalog storage operations over
// products and categories. All lists preserve insertion order.
type CatalogStore interface {
	// Products returns every product in the catalog
	Products() []domain.Product

	// Product returns the product with the given id, or ErrProductNotFound
	Product(id int64) (domain.Product, error)

	// ProductsByCategory returns all products in the category; an unknown
	// category yields an empty slice, not an error
	ProductsByCategory(categoryID int64) []domain.Product

	// SearchProducts matches term case-insensitively against product name
	// or description; a blank term returns the full list
	SearchProducts(term string) []domain.Product

	// CreateProduct assigns the next id, appends and returns the stored product
	CreateProduct(p domain.Product) (domain.Product, error)

	// UpdateProduct overwrites mutable fields of an existing product
	UpdateProduct(id int64, p domain.Product) (domain.Product, error)

	// DeleteProduct removes the product with the given id
	DeleteProduct(id int64) error

	// Categories returns every category
	Categories() []domain.Category

	// Category returns the category with the given id, or ErrCategoryNotFound
	Category(id int64) (domain.Category, error)

	// SearchCategories matches term case-insensitively against category name
	// or description; a blank term returns the full list
	SearchCategories(term string) []domain.Category

	// CategoriesByDate returns categories sorted by creation date,
	// newest first unless ascending is set
	CategoriesByDate(ascending bool) []domain.Category

	// CreateCategory assigns the next id, stamps CreatedOn and stores the category
	CreateCategory(c domain.Category) (domain.Category, error)

	// UpdateCategory overwrites name and description; CreatedOn is immutable
	UpdateCategory(id int64, c domain.Category) (domain.Category, error)

	// DeleteCategory removes the category with the given id
	DeleteCategory(id int64) error
}
