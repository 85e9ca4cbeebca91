package models

// Recommendation is the API representation of a restaurant search
type Recommendation struct {
	Hour        int          `json:"hour"`
	Count       int          `json:"count"`
	Restaurants []Restaurant `json:"restaurants"`
	Message     string       `json:"message"`
}
