package handlers

import (
	"net/http"

	"raphtravel/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes profile access for the authenticated user.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// GetProfileHandler handles GET /users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		getLogger().Error("Failed to get user profile", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePreferencesHandler handles PUT /users/me/preferences.
func (h *UserHandler) UpdatePreferencesHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var preferences map[string]any
	if err := c.ShouldBindJSON(&preferences); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.UpdatePreferences(userID, preferences)
	if err != nil {
		getLogger().Error("Failed to update preferences", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, usr)
}
