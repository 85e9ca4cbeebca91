package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dev-mike-s/foodmart/internal/recommender"
	"github.com/dev-mike-s/foodmart/internal/service"
)

// RestaurantHandler handles restaurant listing and recommendations
type RestaurantHandler struct {
	service *service.RecommendationService
	logger  *slog.Logger
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service *service.RecommendationService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger,
	}
}

// ListRestaurants handles GET /api/restaurant
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListRestaurants(r.Context())
	if err != nil {
		h.logger.Error("failed to list restaurants", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, restaurants, h.logger)
}

// Recommend handles GET /api/restaurant/recommendation
// Query: price ("$$"), maxDelivery (minutes), maxDistance, hour (0-23).
// Every parameter is optional; hour defaults to the server clock.
func (h *RestaurantHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	criteria, hour, err := h.parseQuery(r)
	if err != nil {
		h.logger.Warn("invalid recommendation query", "query", r.URL.RawQuery, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	rec, err := h.service.RecommendAt(r.Context(), criteria, hour)
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidHour) || errors.Is(err, recommender.ErrInvalidCriteria) {
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		h.logger.Error("failed to recommend restaurants", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Debug("restaurants recommended", "hour", rec.Hour, "count", rec.Count)
	WriteJSON(w, http.StatusOK, rec, h.logger)
}

func (h *RestaurantHandler) parseQuery(r *http.Request) (recommender.Criteria, int, error) {
	q := r.URL.Query()
	criteria := recommender.DefaultCriteria()
	hour := h.service.CurrentHour()

	if v := q.Get("price"); v != "" {
		bracket, err := recommender.ParsePriceBracket(v)
		if err != nil {
			return criteria, 0, err
		}
		criteria.MaxPriceBracket = bracket
	}

	if v := q.Get("maxDelivery"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return criteria, 0, fmt.Errorf("maxDelivery must be an integer: %q", v)
		}
		criteria.MaxDeliveryMinutes = n
	}

	if v := q.Get("maxDistance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, 0, fmt.Errorf("maxDistance must be a number: %q", v)
		}
		criteria.MaxDistance = f
	}

	if v := q.Get("hour"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return criteria, 0, fmt.Errorf("hour must be an integer: %q", v)
		}
		hour = n
	}

	return criteria, hour, nil
}
