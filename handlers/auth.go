package handlers

import (
	"errors"
	"net/http"

	"raphtravel/models"
	"raphtravel/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// LoginHandler handles POST /auth/login. The credentials arrive form-encoded
// as username/password; the username field carries the email.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	resp, err := h.UserService.Authenticate(email, password)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		getLogger().Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	registered, err := h.UserService.Register(req)
	if err != nil {
		var conflict *user.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Message})
			return
		}
		getLogger().Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
		return
	}

	c.JSON(http.StatusCreated, registered)
}
