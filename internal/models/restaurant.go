package models

// Restaurant represents a delivery restaurant of the fixture list.
// PriceBracket is ordinal: 1 is "$", 2 is "$$" and so on.
// The restaurant is open from OpenHour up to, but not including, CloseHour.
type Restaurant struct {
	Name                string  `json:"name" yaml:"name"`
	PriceBracket        int     `json:"priceBracket" yaml:"priceBracket"`
	DeliveryTimeMinutes int     `json:"deliveryTimeMinutes" yaml:"deliveryTimeMinutes"`
	Distance            float64 `json:"distance" yaml:"distance"`
	OpenHour            int     `json:"openHour" yaml:"openHour"`
	CloseHour           int     `json:"closeHour" yaml:"closeHour"`
}
