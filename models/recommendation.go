package models

import "time"

// Recommendation is a single AI-generated travel suggestion.
type Recommendation struct {
	Destination         string   `json:"destination"`
	Rationale           string   `json:"rationale"`
	BestTimeToVisit     string   `json:"best_time_to_visit"`
	EstimatedBudget     string   `json:"estimated_budget"`
	SuggestedActivities []string `json:"suggested_activities"`
}

// RecommendationConstraints narrows what the recommendation engine may suggest.
type RecommendationConstraints struct {
	Destination string      `json:"destination,omitempty"`
	Budget      float64     `json:"budget,omitempty"`
	TravelDates []time.Time `json:"travel_dates,omitempty"`
}

// PreferenceProfile is the aggregate of a user's search and booking history.
// Only destination accumulation has a defined rule; the remaining facets are
// carried for shape compatibility and left empty.
type PreferenceProfile struct {
	PreferredDestinations []string       `json:"preferred_destinations"`
	BudgetRange           map[string]any `json:"budget_range"`
	AccommodationPrefs    []string       `json:"accommodation_preferences"`
	TravelStyle           []string       `json:"travel_style"`
	TypicalDuration       *int           `json:"typical_duration"`
	SeasonalPreferences   []string       `json:"seasonal_preferences"`
}
