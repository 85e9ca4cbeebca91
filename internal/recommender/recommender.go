// Package recommender filters a restaurant list down to the places that are
// affordable, deliver quickly enough, are close enough and are open right now.
package recommender

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dev-mike-s/foodmart/internal/models"
)

const (
	DefaultPrice              = "$$"
	DefaultMaxDeliveryMinutes = 90
	DefaultMaxDistance        = 10
)

var (
	ErrInvalidPrice    = errors.New("price must be one or more '$' characters")
	ErrInvalidHour     = errors.New("hour must be between 0 and 23")
	ErrInvalidCriteria = errors.New("criteria ceilings must be finite and not negative")
)

// Criteria holds the inclusive ceilings a restaurant must stay within
type Criteria struct {
	MaxPriceBracket    int     `json:"maxPriceBracket"`
	MaxDeliveryMinutes int     `json:"maxDeliveryMinutes"`
	MaxDistance        float64 `json:"maxDistance"`
}

// DefaultCriteria returns "$$", 90 minutes and a distance of 10
func DefaultCriteria() Criteria {
	return Criteria{
		MaxPriceBracket:    len(DefaultPrice),
		MaxDeliveryMinutes: DefaultMaxDeliveryMinutes,
		MaxDistance:        DefaultMaxDistance,
	}
}

// Validate checks that no ceiling is negative. NaN or infinite distances
// would disable the distance predicate and are rejected too.
func (c Criteria) Validate() error {
	if math.IsNaN(c.MaxDistance) || math.IsInf(c.MaxDistance, 0) {
		return ErrInvalidCriteria
	}
	if c.MaxPriceBracket < 0 || c.MaxDeliveryMinutes < 0 || c.MaxDistance < 0 {
		return ErrInvalidCriteria
	}
	return nil
}

// ParsePriceBracket turns a dollar sign string like "$$" into its bracket
func ParsePriceBracket(dollarSigns string) (int, error) {
	s := strings.TrimSpace(dollarSigns)
	if s == "" || strings.Trim(s, "$") != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, dollarSigns)
	}
	return len(s), nil
}

// ValidateHour checks that hour is a wall-clock hour
func ValidateHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	return nil
}

// IsOpen reports whether r is open at hour. CloseHour itself is closed.
func IsOpen(r models.Restaurant, hour int) bool {
	return hour >= r.OpenHour && hour < r.CloseHour
}

// Matches applies the four predicates to a single restaurant
func Matches(r models.Restaurant, c Criteria, hour int) bool {
	if r.PriceBracket > c.MaxPriceBracket {
		return false
	}
	if r.DeliveryTimeMinutes > c.MaxDeliveryMinutes {
		return false
	}
	if r.Distance > c.MaxDistance {
		return false
	}
	return IsOpen(r, hour)
}

// Result holds the matching restaurants in fixture order
type Result struct {
	Matches []models.Restaurant
}

// Filter keeps every restaurant that matches c at hour, preserving order
func Filter(restaurants []models.Restaurant, c Criteria, hour int) Result {
	matches := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if Matches(r, c, hour) {
			matches = append(matches, r)
		}
	}
	return Result{Matches: matches}
}

// Count returns the number of matching restaurants
func (r Result) Count() int {
	return len(r.Matches)
}

// First returns the first match, if any
func (r Result) First() (models.Restaurant, bool) {
	if len(r.Matches) == 0 {
		return models.Restaurant{}, false
	}
	return r.Matches[0], true
}

// Message renders the console summary of the result
func (r Result) Message() string {
	first, ok := r.First()
	if !ok {
		return "There are no restaurants available right now."
	}
	return fmt.Sprintf("We found %d restaurants, the first is %s.", r.Count(), first.Name)
}
