package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dev-mike-s/foodmart/internal/repository"
	"github.com/dev-mike-s/foodmart/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
// Query: preOrder (bool) keeps only pre order products.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var filter service.ProductFilter
	if v := r.URL.Query().Get("preOrder"); v != "" {
		preOrder, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("invalid preOrder filter", "preOrder", v)
			WriteError(w, http.StatusBadRequest, "preOrder must be a boolean", h.logger)
			return
		}
		filter.PreOrderOnly = preOrder
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productName}
// - 200: successful operation
// - 400: blank name
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "productName")

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyProductName) {
			h.logger.Warn("product name is required")
			WriteError(w, http.StatusBadRequest, "Invalid name supplied", h.logger)
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "product", name)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "product", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
