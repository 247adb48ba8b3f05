package user

import (
	"fmt"
	"time"

	"raphtravel/models"
	"raphtravel/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies the email/password pair and issues a signed session
// token. The failure message never distinguishes an unknown email from a
// wrong password.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, NewAuthError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError()
	}

	expiry := time.Duration(s.Cfg.AccessTokenExpireMinutes) * time.Minute
	token, err := utils.GenerateToken([]byte(s.Cfg.JWTSecret), usr.ID, usr.Email, expiry)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
