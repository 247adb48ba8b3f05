package userRepo

import (
	"raphtravel/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines the persistence operations the user service needs.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
}
