package intelligence

import "raphtravel/models"

// InferPreferences aggregates a user's search and booking history into a
// preference profile. Destination accumulation is the only defined rule; the
// remaining facets have no aggregation semantics and stay empty.
func (s *DefaultRecommendationService) InferPreferences(searchHistory []map[string]any, bookingHistory []models.Booking) models.PreferenceProfile {
	profile := models.PreferenceProfile{
		PreferredDestinations: []string{},
		BudgetRange:           map[string]any{},
		AccommodationPrefs:    []string{},
		TravelStyle:           []string{},
		SeasonalPreferences:   []string{},
	}

	seen := map[string]bool{}
	addDestination := func(dest string) {
		if dest == "" || seen[dest] {
			return
		}
		seen[dest] = true
		profile.PreferredDestinations = append(profile.PreferredDestinations, dest)
	}

	for _, b := range bookingHistory {
		if dest, ok := b.BookingData["destination"].(string); ok {
			addDestination(dest)
		}
	}
	for _, search := range searchHistory {
		if dest, ok := search["searched_destination"].(string); ok {
			addDestination(dest)
		}
	}

	return profile
}
