package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dev-mike-s/foodmart/internal/checkout"
	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrEmptyProductName = errors.New("product name is required")
)

// ProductFinder looks up a single product by name
type ProductFinder interface {
	GetByName(ctx context.Context, name string) (*models.Product, error)
}

// CheckoutService turns a product name into a priced receipt
type CheckoutService struct {
	products       ProductFinder
	defaultAddress string
	now            func() time.Time
}

// NewCheckoutService creates a checkout service. An empty defaultAddress
// falls back to checkout.DefaultShippingAddress.
func NewCheckoutService(products ProductFinder, defaultAddress string) *CheckoutService {
	if defaultAddress == "" {
		defaultAddress = checkout.DefaultShippingAddress
	}
	return &CheckoutService{
		products:       products,
		defaultAddress: defaultAddress,
		now:            time.Now,
	}
}

// DefaultAddress returns the address used when a request has none
func (s *CheckoutService) DefaultAddress() string {
	return s.defaultAddress
}

// Checkout prices the named product for the given address
func (s *CheckoutService) Checkout(ctx context.Context, req models.ReceiptRequest) (*models.Receipt, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, ErrEmptyProductName
	}

	product, err := s.products.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("product %q: %w", name, err)
		}
		return nil, fmt.Errorf("failed to look up product %q: %w", name, err)
	}

	address := req.ShippingAddress
	if address == "" {
		address = s.defaultAddress
	}

	receipt := checkout.NewReceipt(*product, address)
	receipt.ID = generateReceiptID()
	receipt.IssuedAt = s.now().UTC()

	return &receipt, nil
}

// generateReceiptID generates a unique receipt ID using UUID
func generateReceiptID() string {
	return uuid.New().String()
}
