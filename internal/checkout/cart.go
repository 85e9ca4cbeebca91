package checkout

import "github.com/dev-mike-s/foodmart/internal/models"

// Cart collects products before checkout. Receipts are still priced per
// product; the cart only offers membership and a display subtotal.
type Cart struct {
	items []models.Product
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{items: make([]models.Product, 0)}
}

// Add appends p to the cart
func (c *Cart) Add(p models.Product) {
	c.items = append(c.items, p)
}

// Contains reports whether a product with the given name is in the cart
func (c *Cart) Contains(name string) bool {
	for _, p := range c.items {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Len returns the number of products in the cart
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the cart contents
func (c *Cart) Items() []models.Product {
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal sums the product prices without shipping or tax
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, p := range c.items {
		sum += p.Price
	}
	return sum
}
