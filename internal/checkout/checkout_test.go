package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mike-s/foodmart/internal/models"
)

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"well above threshold", 30, 0},
		{"exactly at threshold", 25, 0},
		{"just below threshold", 24.99, 5},
		{"cheap", 10, 5},
		{"free product", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingFee(tt.price))
		})
	}
}

func TestTaxRate(t *testing.T) {
	assert.Equal(t, 0.10, TaxRate("New York"))
	assert.Equal(t, 0.05, TaxRate(DefaultShippingAddress))
	assert.Equal(t, 0.05, TaxRate("new york"), "address match is exact")
	assert.Equal(t, 0.05, TaxRate("New York, NY 10001"), "address match is exact")
}

func TestNewReceipt(t *testing.T) {
	t.Run("free shipping in Berlin", func(t *testing.T) {
		r := NewReceipt(models.Product{Name: "fanny pack", Price: 30, PreOrder: true}, DefaultShippingAddress)

		assert.Equal(t, 0.0, r.Shipping)
		assert.InDelta(t, 1.5, r.TaxTotal, 1e-9)
		assert.InDelta(t, 31.5, r.Total, 1e-9)
		assert.Equal(t, 5, TaxPercent(r))
	})

	t.Run("charged shipping in New York", func(t *testing.T) {
		r := NewReceipt(models.Product{Name: "tote bag", Price: 15}, "New York")

		assert.Equal(t, 5.0, r.Shipping)
		assert.InDelta(t, 1.5, r.TaxTotal, 1e-9)
		assert.InDelta(t, 21.5, r.Total, 1e-9)
		assert.Equal(t, 10, TaxPercent(r))
	})
}

func TestRender(t *testing.T) {
	r := NewReceipt(models.Product{Name: "fanny pack", Price: 30, PreOrder: true}, DefaultShippingAddress)

	want := "Your receipt:\n" +
		"  Product:           fanny pack\n" +
		"  Price:             30\n" +
		"  Shipping:          0\n" +
		"  Tax (5%): 1.50\n" +
		"  Total:             31.50\n" +
		"  Shipping address:  Friedrichstraße 10, Berlin, 10117\n"

	assert.Equal(t, want, Render(r))
}

func TestNotices(t *testing.T) {
	preOrder := NewReceipt(models.Product{Name: "hoodie", Price: 40, PreOrder: true}, DefaultShippingAddress)
	assert.Equal(t, []string{
		"You'll get notified when it's sent.",
		"We provide free shipping for this product.",
	}, Notices(preOrder))

	regular := NewReceipt(models.Product{Name: "beanie", Price: 18}, DefaultShippingAddress)
	assert.Equal(t, []string{"It has no pre order option."}, Notices(regular))
}

func TestCart(t *testing.T) {
	cart := NewCart()
	require.Zero(t, cart.Len())
	assert.False(t, cart.Contains("shirt"))

	cart.Add(models.Product{Name: "shirt", Price: 25})
	cart.Add(models.Product{Name: "beanie", Price: 18.5})

	assert.Equal(t, 2, cart.Len())
	assert.True(t, cart.Contains("shirt"))
	assert.InDelta(t, 43.5, cart.Subtotal(), 1e-9)

	items := cart.Items()
	items[0].Name = "changed"
	assert.True(t, cart.Contains("shirt"), "Items returns a copy")
}
