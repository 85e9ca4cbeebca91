package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/recommender"
	"github.com/dev-mike-s/foodmart/internal/repository"
)

// RecommendationService filters the restaurant list against a clock
type RecommendationService struct {
	repo repository.RestaurantRepository
	now  func() time.Time
}

// NewRecommendationService creates a service reading the hour from now.
// A nil now falls back to time.Now.
func NewRecommendationService(repo repository.RestaurantRepository, now func() time.Time) *RecommendationService {
	if now == nil {
		now = time.Now
	}
	return &RecommendationService{
		repo: repo,
		now:  now,
	}
}

// ListRestaurants returns the full restaurant list
func (s *RecommendationService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.GetAll(ctx)
}

// CurrentHour returns the local wall-clock hour
func (s *RecommendationService) CurrentHour() int {
	return s.now().Hour()
}

// Recommend filters at the current hour
func (s *RecommendationService) Recommend(ctx context.Context, criteria recommender.Criteria) (*models.Recommendation, error) {
	return s.RecommendAt(ctx, criteria, s.CurrentHour())
}

// RecommendAt filters at the given hour
func (s *RecommendationService) RecommendAt(ctx context.Context, criteria recommender.Criteria, hour int) (*models.Recommendation, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if err := recommender.ValidateHour(hour); err != nil {
		return nil, err
	}

	restaurants, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	result := recommender.Filter(restaurants, criteria, hour)
	return &models.Recommendation{
		Hour:        hour,
		Count:       result.Count(),
		Restaurants: result.Matches,
		Message:     result.Message(),
	}, nil
}
