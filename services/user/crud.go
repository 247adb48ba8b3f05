package user

import (
	"fmt"

	"raphtravel/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// UpdatePreferences replaces the user's stored travel preferences.
func (s *DefaultUserService) UpdatePreferences(userID string, preferences map[string]any) (*models.User, error) {
	updateDoc := bson.M{"travel_preferences": preferences}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return s.Repo.GetByID(userID)
}
