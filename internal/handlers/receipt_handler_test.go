package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/repository"
	"github.com/dev-mike-s/foodmart/internal/service"
	"github.com/dev-mike-s/foodmart/pkg/logger"
)

func TestReceiptHandler_CreateReceipt(t *testing.T) {
	svc := service.NewCheckoutService(repository.NewInMemoryProductRepository(), "")
	handler := NewReceiptHandler(svc, logger.New("error"))

	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "fanny pack to Berlin",
			requestBody:    models.ReceiptRequest{ProductName: "fanny pack"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp models.ReceiptResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.ID == "" {
					t.Error("expected receipt ID to be set")
				}
				if resp.Shipping != 0 {
					t.Errorf("expected free shipping, got %v", resp.Shipping)
				}
				if resp.TaxRate != 0.05 {
					t.Errorf("expected tax rate 0.05, got %v", resp.TaxRate)
				}
				if len(resp.Notices) != 2 {
					t.Errorf("expected pre order and free shipping notices, got %v", resp.Notices)
				}
				if !strings.Contains(resp.Text, "Total:             31.50") {
					t.Errorf("expected rendered total 31.50, got:\n%s", resp.Text)
				}
			},
		},
		{
			name:           "tote bag to New York",
			requestBody:    models.ReceiptRequest{ProductName: "tote bag", ShippingAddress: "New York"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp models.ReceiptResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Shipping != 5 {
					t.Errorf("expected shipping 5, got %v", resp.Shipping)
				}
				if !strings.Contains(resp.Text, "Tax (10%): 1.50") {
					t.Errorf("expected 10%% tax line, got:\n%s", resp.Text)
				}
				if !strings.Contains(resp.Text, "Total:             21.50") {
					t.Errorf("expected rendered total 21.50, got:\n%s", resp.Text)
				}
			},
		},
		{
			name:           "unknown product",
			requestBody:    models.ReceiptRequest{ProductName: "umbrella"},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("failed to unmarshal error response: %v", err)
				}
				if resp.Error != "Product not found" {
					t.Errorf("expected 'Product not found', got %q", resp.Error)
				}
			},
		},
		{
			name:           "missing product name",
			requestBody:    models.ReceiptRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/receipt", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateReceipt(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

type failingProducts struct{}

func (failingProducts) GetByName(context.Context, string) (*models.Product, error) {
	return nil, errors.New("catalog unavailable")
}

func TestReceiptHandler_LogLevels(t *testing.T) {
	tests := []struct {
		name           string
		products       service.ProductFinder
		requestBody    string
		expectedStatus int
		expectedLevel  string
	}{
		{"invalid JSON", repository.NewInMemoryProductRepository(), "invalid json", http.StatusBadRequest, `"level":"WARN"`},
		{"missing product name", repository.NewInMemoryProductRepository(), `{}`, http.StatusBadRequest, `"level":"WARN"`},
		{"unknown product", repository.NewInMemoryProductRepository(), `{"productName":"umbrella"}`, http.StatusNotFound, `"level":"INFO"`},
		{"repository failure", failingProducts{}, `{"productName":"beanie"}`, http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			svc := service.NewCheckoutService(tt.products, "")
			handler := NewReceiptHandler(svc, logger.NewWithWriter(&logs, "debug"))

			req := httptest.NewRequest(http.MethodPost, "/api/receipt", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()
			handler.CreateReceipt(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if !strings.Contains(logs.String(), tt.expectedLevel) {
				t.Errorf("expected a %s entry, got:\n%s", tt.expectedLevel, logs.String())
			}
			if tt.expectedStatus < http.StatusInternalServerError && strings.Contains(logs.String(), `"level":"ERROR"`) {
				t.Errorf("client error logged at ERROR:\n%s", logs.String())
			}
		})
	}
}

func TestReceiptHandler_IssuedAtInResponse(t *testing.T) {
	svc := service.NewCheckoutService(repository.NewInMemoryProductRepository(), "")
	handler := NewReceiptHandler(svc, logger.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/api/receipt", strings.NewReader(`{"productName":"shirt"}`))
	w := httptest.NewRecorder()
	handler.CreateReceipt(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, ok := raw["issuedAt"]; !ok {
		t.Errorf("expected issuedAt in response, got keys %v", raw)
	}
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" || resp.Version != Version {
		t.Errorf("unexpected health response: %+v", resp)
	}
}
