package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dev-mike-s/foodmart/internal/checkout"
	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/repository"
	"github.com/dev-mike-s/foodmart/internal/service"
)

// ReceiptHandler handles checkout requests
type ReceiptHandler struct {
	checkoutService *service.CheckoutService
	log             *slog.Logger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(checkoutService *service.CheckoutService, log *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

// CreateReceipt handles POST /api/receipt
func (h *ReceiptHandler) CreateReceipt(w http.ResponseWriter, r *http.Request) {
	var req models.ReceiptRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode receipt request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	receipt, err := h.checkoutService.Checkout(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyProductName):
			h.log.Warn("receipt request without product name")
			WriteError(w, http.StatusBadRequest, "Product name is required", h.log)
		case errors.Is(err, repository.ErrProductNotFound):
			h.log.Info("receipt for unknown product", "product", req.ProductName)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
		default:
			h.log.Error("failed to create receipt", "product", req.ProductName, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.ReceiptResponse{
		Receipt: *receipt,
		Notices: checkout.Notices(*receipt),
		Text:    checkout.Render(*receipt),
	}, h.log)
	h.log.Info("receipt created", "receipt_id", receipt.ID, "product", receipt.Product.Name, "total", receipt.Total)
}
