package user

import (
	"fmt"

	"raphtravel/models"
	"raphtravel/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the registration payload, checks for duplicates, hashes
// the credential, and stores the new user.
func (s *DefaultUserService) Register(req models.UserRegistration) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, NewConflictError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:                uuid.New().String(),
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      string(hash),
		PhoneNumber:       req.PhoneNumber,
		TravelPreferences: req.TravelPreferences,
	}

	if err := s.Repo.Create(usr); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return usr, nil
}
