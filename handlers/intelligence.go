package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"raphtravel/models"
	"raphtravel/services/booking"
	"raphtravel/services/intelligence"
	"raphtravel/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler exposes the AI travel recommendation endpoint.
type RecommendationHandler struct {
	Recommendations intelligence.RecommendationService
	BookingService  booking.BookingService
	UserService     user.UserService
}

func NewRecommendationHandler(recSvc intelligence.RecommendationService, bookingSvc booking.BookingService, userSvc user.UserService) *RecommendationHandler {
	return &RecommendationHandler{
		Recommendations: recSvc,
		BookingService:  bookingSvc,
		UserService:     userSvc,
	}
}

// GetRecommendationsHandler handles GET /bookings/recommendations. The reply
// is always a list; recommendation failures degrade to an empty one.
func (h *RecommendationHandler) GetRecommendationsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		getLogger().Error("Failed to resolve caller", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := h.BookingService.ListUserBookings(userID)
	if err != nil {
		getLogger().Warn("Failed to load booking history for recommendations",
			zap.String("userID", userID), zap.Error(err))
		history = nil
	}

	constraints := models.RecommendationConstraints{
		Destination: c.Query("destination"),
	}
	if raw := c.Query("budget"); raw != "" {
		if budget, err := strconv.ParseFloat(raw, 64); err == nil {
			constraints.Budget = budget
		}
	}
	for _, raw := range strings.Split(c.Query("travel_dates"), ",") {
		if raw == "" {
			continue
		}
		if date, err := parseDate(raw); err == nil {
			constraints.TravelDates = append(constraints.TravelDates, date)
		}
	}

	preferences := usr.TravelPreferences
	if len(preferences) == 0 {
		// No stored preferences; fall back to what the booking history implies.
		profile := h.Recommendations.InferPreferences(nil, history)
		if len(profile.PreferredDestinations) > 0 {
			preferences = map[string]any{"preferred_destinations": profile.PreferredDestinations}
		}
	}

	recs := h.Recommendations.GenerateRecommendations(c.Request.Context(), preferences, history, constraints)
	c.JSON(http.StatusOK, recs)
}
