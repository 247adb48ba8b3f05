package intelligence

import (
	"context"

	"raphtravel/models"
)

// RecommendationService turns user preference and history data into
// structured travel suggestions. It never surfaces a failure to the caller:
// any completion fault or unparseable output degrades to an empty list.
type RecommendationService interface {
	GenerateRecommendations(ctx context.Context, preferences map[string]any, history []models.Booking, constraints models.RecommendationConstraints) []models.Recommendation
	InferPreferences(searchHistory []map[string]any, bookingHistory []models.Booking) models.PreferenceProfile
}

// DefaultRecommendationService is the production implementation.
type DefaultRecommendationService struct {
	Generator ContentGenerator
}

// NewDefaultRecommendationService wires the service to a completion backend.
func NewDefaultRecommendationService(generator ContentGenerator) *DefaultRecommendationService {
	return &DefaultRecommendationService{Generator: generator}
}
