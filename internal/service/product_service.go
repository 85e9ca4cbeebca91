package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/repository"
)

// ProductFilter narrows a product listing. The zero value lists everything.
type ProductFilter struct {
	PreOrderOnly bool
}

func (f ProductFilter) keep(p models.Product) bool {
	return !f.PreOrderOnly || p.PreOrder
}

// ProductService serves the shop catalog
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a catalog service over repo
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns the products passing filter, in catalog order
func (s *ProductService) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]models.Product, 0, len(all))
	for _, p := range all {
		if filter.keep(p) {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetProduct looks up a product by its trimmed name. A missing product is
// reported as repository.ErrProductNotFound wrapped with the name.
func (s *ProductService) GetProduct(ctx context.Context, name string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}

	product, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, fmt.Errorf("product %q: %w", name, err)
	}
	return product, err
}
