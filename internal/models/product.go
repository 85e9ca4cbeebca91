package models

// Product represents an article of the shop catalog
type Product struct {
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	PreOrder bool    `json:"preOrder" yaml:"preOrder"`
}
