package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAccount is returned when no account matches, or it is disabled.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrInvalidEmail is returned for a malformed email address.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrTooManyRequests is returned when the provider rate limits the account.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrNotConfigured is returned when the provider has no usable API key.
	ErrNotConfigured = errors.New("identity provider is not configured")
	// ErrNotSignedIn is returned when an operation needs a session and there is none.
	ErrNotSignedIn = errors.New("not signed in")
)

// ProviderError is a provider failure that has no dedicated error.
type ProviderError struct {
	Code    string // e.g. "EMAIL_EXISTS"
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}

// Message returns the text to show to the user for err.
func Message(err error) string {
	var perr *ProviderError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password. If you forgot your password, reset it in Firebase console or recreate the account."
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address. Please check the email and try again."
	case errors.Is(err, ErrTooManyRequests):
		return "Too many attempts. Please try again later."
	case errors.Is(err, ErrUnknownAccount):
		return "No account found for this email."
	case errors.Is(err, ErrNotConfigured):
		return "Firebase is not configured. Please add valid FIREBASE_API_KEY and other Firebase settings to .env and try again."
	case errors.Is(err, ErrNotSignedIn):
		return "You are not signed in. Run 'bflow login' first."
	case errors.As(err, &perr):
		return perr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Login failed"
}
