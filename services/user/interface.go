package user

import (
	"raphtravel/config"
	userRepo "raphtravel/database/repository/user"
	"raphtravel/models"
)

// UserService owns registration, authentication, and profile access. Every
// protected operation in the system resolves its caller through this service.
type UserService interface {
	// Register creates a new account. It fails with a *ConflictError when the
	// email is already taken. The plaintext password is hashed immediately
	// and never persisted or logged.
	Register(req models.UserRegistration) (*models.User, error)

	// Authenticate verifies credentials and issues a time-bounded session
	// token. Both an unknown email and a wrong password fail with the same
	// *AuthError.
	Authenticate(email, password string) (*models.AuthResponse, error)

	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdatePreferences(userID string, preferences map[string]any) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	Cfg  *config.Config
}
