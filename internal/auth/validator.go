package auth

import "unicode/utf8"

// Password strength labels shown next to the strength meter.
const (
	StrengthWeak   = "Weak"
	StrengthMedium = "Medium"
	StrengthStrong = "Strong"
)

// MinRegistrationStrength is the lowest score accepted on sign-up.
const MinRegistrationStrength = 3

// PasswordStrength scores a password on a 0-5 scale: one point each
// for length >= 8, an uppercase letter, a lowercase letter, a digit,
// and a non-alphanumeric character. The submit gate depends on this
// exact scoring, so the character classes are ASCII like the form's.
func PasswordStrength(password string) int {
	strength := 0
	// Length counts characters, not bytes.
	if utf8.RuneCountInString(password) >= 8 {
		strength++
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	if upper {
		strength++
	}
	if lower {
		strength++
	}
	if digit {
		strength++
	}
	if symbol {
		strength++
	}
	return strength
}

// StrengthLabel maps a strength score to its display label.
func StrengthLabel(score int) string {
	if score <= 1 {
		return StrengthWeak
	}
	if score <= 3 {
		return StrengthMedium
	}
	return StrengthStrong
}

// ValidateSignIn checks sign-in credentials before a request is
// issued. No strength check on sign-in.
func ValidateSignIn(email, password string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// ValidateRegistration checks a registration form. Both failures are
// resolved locally and never reach the provider.
func ValidateRegistration(username, email, password, confirmPassword string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if password != confirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	}
	if PasswordStrength(password) < MinRegistrationStrength {
		return &ValidationError{
			Field:   "password",
			Message: "Password is too weak. Please use at least 8 characters with uppercase, lowercase, and numbers.",
		}
	}
	return nil
}
