package models

// Member represents a shop account holder
type Member struct {
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Premium     bool    `json:"premium"`
	Balance     float64 `json:"balance"`
	MemberSince int     `json:"memberSince"`
}
