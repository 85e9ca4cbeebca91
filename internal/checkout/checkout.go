// Package checkout prices a single product: shipping by a price threshold,
// tax by the shipping address, and a printable receipt.
package checkout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dev-mike-s/foodmart/internal/models"
)

const (
	FreeShippingThreshold = 25.0
	FlatShippingFee       = 5.0

	NewYorkTaxRate = 0.10
	DefaultTaxRate = 0.05

	DefaultProductName     = "fanny pack"
	DefaultShippingAddress = "Friedrichstraße 10, Berlin, 10117"
)

// ShippingFee is free from the threshold on, flat below it
func ShippingFee(price float64) float64 {
	if price >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// TaxRate is keyed on the whole address string, not a parsed city
func TaxRate(address string) float64 {
	if address == "New York" {
		return NewYorkTaxRate
	}
	return DefaultTaxRate
}

// NewReceipt computes shipping, tax and total for p shipped to address.
// Amounts are kept unrounded; rounding happens only when rendering.
func NewReceipt(p models.Product, address string) models.Receipt {
	shipping := ShippingFee(p.Price)
	rate := TaxRate(address)
	tax := p.Price * rate

	return models.Receipt{
		Product:         p,
		Shipping:        shipping,
		TaxRate:         rate,
		TaxTotal:        tax,
		Total:           p.Price + tax + shipping,
		ShippingAddress: address,
	}
}

// PreOrderNotice tells the customer whether the product ships later
func PreOrderNotice(p models.Product) string {
	if p.PreOrder {
		return "You'll get notified when it's sent."
	}
	return "It has no pre order option."
}

// ShippingNotice returns the free shipping line, or "" if shipping is charged
func ShippingNotice(fee float64) string {
	if fee == 0 {
		return "We provide free shipping for this product."
	}
	return ""
}

// Notices collects the non-empty customer notices for r in print order
func Notices(r models.Receipt) []string {
	notices := []string{PreOrderNotice(r.Product)}
	if n := ShippingNotice(r.Shipping); n != "" {
		notices = append(notices, n)
	}
	return notices
}

// TaxPercent returns the tax rate as a whole percentage
func TaxPercent(r models.Receipt) int {
	return int(math.Round(r.TaxRate * 100))
}

// Render formats the receipt block
func Render(r models.Receipt) string {
	var b strings.Builder
	b.WriteString("Your receipt:\n")
	fmt.Fprintf(&b, "  Product:           %s\n", r.Product.Name)
	fmt.Fprintf(&b, "  Price:             %s\n", formatAmount(r.Product.Price))
	fmt.Fprintf(&b, "  Shipping:          %s\n", formatAmount(r.Shipping))
	fmt.Fprintf(&b, "  Tax (%d%%): %.2f\n", TaxPercent(r), r.TaxTotal)
	fmt.Fprintf(&b, "  Total:             %.2f\n", r.Total)
	fmt.Fprintf(&b, "  Shipping address:  %s\n", r.ShippingAddress)
	return b.String()
}

// formatAmount prints a plain amount without trailing zeros: 30, 12.5
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
