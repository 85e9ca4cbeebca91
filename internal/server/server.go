// Package server exposes the services over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dev-mike-s/foodmart/internal/app"
	"github.com/dev-mike-s/foodmart/internal/config"
	"github.com/dev-mike-s/foodmart/internal/handlers"
	"github.com/dev-mike-s/foodmart/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the API routes
func NewRouter(a *app.App, cfg *config.Config, log *slog.Logger) http.Handler {
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(a.Products, log)
	restaurantHandler := handlers.NewRestaurantHandler(a.Recommendations, log)
	receiptHandler := handlers.NewReceiptHandler(a.Checkout, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productName}", productHandler.GetProduct)

		r.Get("/restaurant", restaurantHandler.ListRestaurants)
		r.Get("/restaurant/recommendation", restaurantHandler.Recommend)

		r.With(middleware.APIKeyAuth(cfg.Auth)).Post("/receipt", receiptHandler.CreateReceipt)
	})

	return r
}

// Run serves handler until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, log *slog.Logger) error {
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
