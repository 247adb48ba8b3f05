package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"raphtravel/models"
	"raphtravel/utils"

	"go.uber.org/zap"
)

const generateTimeout = 30 * time.Second

// GenerateRecommendations builds a structured prompt from the user's
// preferences, booking history, and constraints, invokes the completion
// backend, and parses the reply into a recommendation list. Every failure
// path returns an empty list; operators see the cause in the log.
func (s *DefaultRecommendationService) GenerateRecommendations(ctx context.Context, preferences map[string]any, history []models.Booking, constraints models.RecommendationConstraints) []models.Recommendation {
	prompt := buildRecommendationPrompt(preferences, history, constraints)

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("GenerateRecommendations: completion failed", zap.Error(err))
		return []models.Recommendation{}
	}

	recs := parseRecommendations(reply)
	if len(recs) == 0 {
		utils.GetLogger().Warn("GenerateRecommendations: no recommendations parsed from model output")
	}
	return recs
}

// buildRecommendationPrompt serializes the inputs deterministically
// (encoding/json sorts map keys) into the prompt the model is held to.
func buildRecommendationPrompt(preferences map[string]any, history []models.Booking, constraints models.RecommendationConstraints) string {
	prefsJSON := marshalIndent(preferences)
	historyJSON := marshalIndent(summarizeHistory(history))
	constraintsJSON := marshalIndent(constraints)

	return fmt.Sprintf(`You are a travel expert assistant. Based on the following information, provide personalized travel recommendations.

User Preferences:
%s

Travel History:
%s

Constraints:
%s

Reply with a numbered list. For each recommendation use exactly this layout:
1. Destination: <destination name>
   Rationale: <why it matches the user's preferences>
   Best time to visit: <best visit window>
   Estimated budget: <estimated budget>
   Suggested activities: <comma-separated activities>`,
		prefsJSON, historyJSON, constraintsJSON)
}

// historySummary is the slice of a past booking that is worth showing the
// model.
type historySummary struct {
	BookingType string         `json:"booking_type"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	TotalCost   float64        `json:"total_cost"`
	Currency    string         `json:"currency"`
	Details     map[string]any `json:"details,omitempty"`
}

func summarizeHistory(history []models.Booking) []historySummary {
	summaries := make([]historySummary, 0, len(history))
	for _, b := range history {
		summaries = append(summaries, historySummary{
			BookingType: string(b.BookingType),
			StartDate:   b.StartDate.Format("2006-01-02"),
			EndDate:     b.EndDate.Format("2006-01-02"),
			TotalCost:   b.TotalCost,
			Currency:    b.Currency,
			Details:     b.BookingData,
		})
	}
	return summaries
}

func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

var itemStart = regexp.MustCompile(`^\s*\d+\.\s*(?:Destination:\s*)?(.+)$`)

// parseRecommendations turns the model's numbered-list reply into structured
// recommendations. Lines that fit no known field are ignored; output that
// yields no items produces an empty list rather than an error.
func parseRecommendations(reply string) []models.Recommendation {
	recs := []models.Recommendation{}
	var current *models.Recommendation

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := itemStart.FindStringSubmatch(line); m != nil {
			if current != nil && current.Destination != "" {
				recs = append(recs, *current)
			}
			current = &models.Recommendation{Destination: strings.TrimSpace(m[1])}
			continue
		}
		if current == nil {
			continue
		}

		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case "rationale", "why it matches", "why":
			current.Rationale = value
		case "best time to visit", "best visit window":
			current.BestTimeToVisit = value
		case "estimated budget", "budget":
			current.EstimatedBudget = value
		case "suggested activities", "activities":
			current.SuggestedActivities = splitActivities(value)
		}
	}

	if current != nil && current.Destination != "" {
		recs = append(recs, *current)
	}
	return recs
}

func splitField(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(strings.TrimLeft(line[:idx], "-* ")))
	value = strings.TrimSpace(line[idx+1:])
	return key, value, value != ""
}

func splitActivities(value string) []string {
	parts := strings.Split(value, ",")
	activities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			activities = append(activities, p)
		}
	}
	return activities
}
