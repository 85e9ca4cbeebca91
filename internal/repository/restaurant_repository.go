package repository

import (
	"context"

	"github.com/dev-mike-s/foodmart/internal/models"
)

// RestaurantRepository defines the interface for restaurant data access
type RestaurantRepository interface {
	GetAll(ctx context.Context) ([]models.Restaurant, error)
}

// InMemoryRestaurantRepository implements RestaurantRepository over a fixture list
type InMemoryRestaurantRepository struct {
	restaurants []models.Restaurant
}

// DefaultRestaurants returns the built-in restaurant fixture list
func DefaultRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{Name: "Pizza Palace", PriceBracket: 2, DeliveryTimeMinutes: 45, Distance: 3.5, OpenHour: 11, CloseHour: 23},
		{Name: "Sushi Zen", PriceBracket: 3, DeliveryTimeMinutes: 60, Distance: 6, OpenHour: 12, CloseHour: 22},
		{Name: "Burger Barn", PriceBracket: 1, DeliveryTimeMinutes: 30, Distance: 2, OpenHour: 10, CloseHour: 24},
		{Name: "Taco Town", PriceBracket: 1, DeliveryTimeMinutes: 95, Distance: 4, OpenHour: 9, CloseHour: 21},
		{Name: "Curry Corner", PriceBracket: 2, DeliveryTimeMinutes: 50, Distance: 12, OpenHour: 17, CloseHour: 23},
		{Name: "Breakfast Club", PriceBracket: 2, DeliveryTimeMinutes: 20, Distance: 1.5, OpenHour: 6, CloseHour: 11},
		{Name: "Midnight Diner", PriceBracket: 2, DeliveryTimeMinutes: 35, Distance: 8, OpenHour: 0, CloseHour: 6},
	}
}

// NewInMemoryRestaurantRepository creates a repository seeded with DefaultRestaurants
func NewInMemoryRestaurantRepository() *InMemoryRestaurantRepository {
	return NewRestaurantRepository(DefaultRestaurants())
}

// NewRestaurantRepository creates a repository over a copy of restaurants
func NewRestaurantRepository(restaurants []models.Restaurant) *InMemoryRestaurantRepository {
	r := &InMemoryRestaurantRepository{
		restaurants: make([]models.Restaurant, len(restaurants)),
	}
	copy(r.restaurants, restaurants)
	return r
}

// GetAll returns all restaurants in fixture order
func (r *InMemoryRestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, len(r.restaurants))
	copy(restaurants, r.restaurants)
	return restaurants, nil
}
