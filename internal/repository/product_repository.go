package repository

import (
	"context"
	"errors"

	"github.com/dev-mike-s/foodmart/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over a fixture list.
// Listing order is fixture order.
type InMemoryProductRepository struct {
	products []models.Product
	byName   map[string]int
}

// DefaultProducts returns the built-in product fixture list
func DefaultProducts() []models.Product {
	return []models.Product{
		{Name: "tote bag", Price: 15, PreOrder: false},
		{Name: "shirt", Price: 25, PreOrder: false},
		{Name: "fanny pack", Price: 30, PreOrder: true},
		{Name: "beanie", Price: 18, PreOrder: false},
		{Name: "hoodie", Price: 40, PreOrder: true},
	}
}

// NewInMemoryProductRepository creates a repository seeded with DefaultProducts
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewProductRepository(DefaultProducts())
}

// NewProductRepository creates a repository over a copy of products.
// On duplicate names the first product wins, like a linear find.
func NewProductRepository(products []models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: make([]models.Product, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	copy(r.products, products)

	for i, p := range r.products {
		if _, exists := r.byName[p.Name]; !exists {
			r.byName[p.Name] = i
		}
	}
	return r
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByName returns the product with exactly the given name
func (r *InMemoryProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	i, exists := r.byName[name]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
