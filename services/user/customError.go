package user

// AuthError indicates a failed credential check. The message is intentionally
// identical for an unknown email and a wrong password so callers cannot
// enumerate accounts.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError builds the generic credential failure.
func NewAuthError() error {
	return &AuthError{Message: "incorrect email or password"}
}

// ConflictError indicates a registration attempt with an email that is
// already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError builds the duplicate-registration failure.
func NewConflictError() error {
	return &ConflictError{Message: "email already registered"}
}
