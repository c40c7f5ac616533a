package auth

// AuthError carries a provider failure message. The message is shown
// to the user verbatim and is never fatal.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError wraps a provider message in an AuthError.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ValidationError is a client-side form rejection. It blocks the
// request before anything reaches the provider.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
