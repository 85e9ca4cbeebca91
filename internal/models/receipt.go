package models

import "time"

// ReceiptRequest represents an incoming checkout request
type ReceiptRequest struct {
	ProductName     string `json:"productName"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

// Receipt is the priced result of checking out a single product
type Receipt struct {
	ID              string    `json:"id,omitempty"`
	Product         Product   `json:"product"`
	Shipping        float64   `json:"shipping"`
	TaxRate         float64   `json:"taxRate"`
	TaxTotal        float64   `json:"taxTotal"`
	Total           float64   `json:"total"`
	ShippingAddress string    `json:"shippingAddress"`
	IssuedAt        time.Time `json:"issuedAt"`
}

// ReceiptResponse is the API representation of a receipt
type ReceiptResponse struct {
	Receipt
	Notices []string `json:"notices"`
	Text    string   `json:"text"`
}
