// Package app wires repositories and services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dev-mike-s/foodmart/internal/config"
	"github.com/dev-mike-s/foodmart/internal/fixtures"
	"github.com/dev-mike-s/foodmart/internal/repository"
	"github.com/dev-mike-s/foodmart/internal/service"
)

// App bundles the services shared by the HTTP API and the CLI
type App struct {
	Products        *service.ProductService
	Recommendations *service.RecommendationService
	Checkout        *service.CheckoutService
}

// New loads the catalog and builds the services. Fixture files replace the
// built-in lists section by section: a file without products keeps the
// built-in products.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, now func() time.Time) (*App, error) {
	restaurants := repository.DefaultRestaurants()
	products := repository.DefaultProducts()

	if sources := fixtures.SplitSources(cfg.Catalog.Fixtures); len(sources) > 0 {
		log.Info("loading fixtures", "sources", sources)

		catalog, err := fixtures.NewLoader().LoadAll(ctx, sources)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		if len(catalog.Restaurants) > 0 {
			restaurants = catalog.Restaurants
		}
		if len(catalog.Products) > 0 {
			products = catalog.Products
		}
	}

	log.Debug("catalog ready", "restaurants", len(restaurants), "products", len(products))

	productRepo := repository.NewProductRepository(products)
	restaurantRepo := repository.NewRestaurantRepository(restaurants)

	return &App{
		Products:        service.NewProductService(productRepo),
		Recommendations: service.NewRecommendationService(restaurantRepo, now),
		Checkout:        service.NewCheckoutService(productRepo, cfg.Checkout.ShippingAddress),
	}, nil
}
