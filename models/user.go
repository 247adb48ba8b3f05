package models

import "time"

// User represents a platform traveler account. The password hash never
// leaves the server; JSON marshaling omits it.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`

	// Free-form travel preferences (e.g. "travel_style": "luxury").
	TravelPreferences map[string]any `bson:"travel_preferences,omitempty" json:"travel_preferences,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistration is the payload accepted at registration time.
type UserRegistration struct {
	Username          string         `json:"username" binding:"required"`
	Email             string         `json:"email" binding:"required,email"`
	Password          string         `json:"password" binding:"required,min=8"`
	PhoneNumber       string         `json:"phone_number"`
	TravelPreferences map[string]any `json:"travel_preferences"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
