// Package auth signs users in against an identity provider and keeps the
// resulting session.
//
// Two providers are available: Firebase, which talks to the Identity Toolkit
// REST API, and Local, the legacy provider that keeps bcrypt password hashes
// in the user collection.
package auth

import (
	"context"
	"errors"
	"time"
)

// Identity is an account authenticated by a Provider.
type Identity struct {
	UID     string    `json:"uid"`
	Email   string    `json:"email"`
	IDToken string    `json:"idToken,omitempty"`
	Expires time.Time `json:"expires"`
}

// Expired reports whether the provider token of the identity has expired.
// Identities without an expiry never expire.
func (id Identity) Expired(now time.Time) bool {
	return !id.Expires.IsZero() && now.After(id.Expires)
}

// Provider authenticates email and password credentials.
type Provider interface {
	// SignIn checks the credentials of an existing account.
	SignIn(ctx context.Context, email, password string) (Identity, error)
	// SignUp creates a new account.
	SignUp(ctx context.Context, email, password string) (Identity, error)
	// ChangePassword proves current again before replacing it with next.
	// It returns the identity to keep in the session from then on.
	ChangePassword(ctx context.Context, id Identity, current, next string) (Identity, error)
}

// Login signs in, and registers the account instead when the provider does
// not know it.
func Login(ctx context.Context, p Provider, email, password string) (Identity, error) {
	id, err := p.SignIn(ctx, email, password)
	if errors.Is(err, ErrUnknownAccount) {
		return p.SignUp(ctx, email, password)
	}
	return id, err
}
