package auth

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/etnz/budget"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserStore reads and replaces the user collection.
type UserStore interface {
	Users(ctx context.Context) ([]budget.User, error)
	SaveUsers(ctx context.Context, users []budget.User) error
}

// Local is the legacy Provider that keeps password hashes in the user collection.
//
// Accounts created before passwords existed have none: the first password
// used to sign in becomes theirs. Passwords stored in clear by older versions
// are accepted once and replaced by their hash.
type Local struct {
	users UserStore
}

// NewLocal returns a provider over users.
func NewLocal(users UserStore) *Local { return &Local{users: users} }

// SignIn implements Provider.
func (l *Local) SignIn(ctx context.Context, email, password string) (Identity, error) {
	users, err := l.users.Users(ctx)
	if err != nil {
		return Identity{}, err
	}
	i := slices.IndexFunc(users, func(u budget.User) bool { return u.Email == email })
	if i < 0 {
		return Identity{}, ErrUnknownAccount
	}
	u := &users[i]

	adopt, err := checkPassword(u.Password, password)
	if err != nil {
		return Identity{}, err
	}
	if adopt {
		if u.Password, err = hash(password); err != nil {
			return Identity{}, err
		}
		logrus.WithField("user", u.ID).Info("legacy account password set")
		if err := l.users.SaveUsers(ctx, users); err != nil {
			return Identity{}, err
		}
	}
	return Identity{UID: u.ID, Email: u.Email}, nil
}

// SignUp implements Provider.
func (l *Local) SignUp(ctx context.Context, email, password string) (Identity, error) {
	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		return Identity{}, ErrInvalidEmail
	}
	if err := validatePassword(password); err != nil {
		return Identity{}, err
	}
	users, err := l.users.Users(ctx)
	if err != nil {
		return Identity{}, err
	}
	if slices.ContainsFunc(users, func(u budget.User) bool { return u.Email == email }) {
		return Identity{}, &ProviderError{Code: "EMAIL_EXISTS", Message: "The email address is already in use by another account."}
	}
	h, err := hash(password)
	if err != nil {
		return Identity{}, err
	}
	u := budget.User{ID: budget.NewID(), Email: email, CreatedAt: time.Now().UTC(), Password: h}
	if err := l.users.SaveUsers(ctx, append(users, u)); err != nil {
		return Identity{}, err
	}
	return Identity{UID: u.ID, Email: u.Email}, nil
}

// ChangePassword implements Provider.
// Local identities carry no token, id is returned as is.
func (l *Local) ChangePassword(ctx context.Context, id Identity, current, next string) (Identity, error) {
	if id.Email == "" {
		return Identity{}, ErrNotSignedIn
	}
	if err := validatePassword(next); err != nil {
		return Identity{}, err
	}
	users, err := l.users.Users(ctx)
	if err != nil {
		return Identity{}, err
	}
	i := slices.IndexFunc(users, func(u budget.User) bool { return u.Email == id.Email })
	if i < 0 {
		return Identity{}, ErrUnknownAccount
	}
	if _, err := checkPassword(users[i].Password, current); err != nil {
		return Identity{}, err
	}
	if users[i].Password, err = hash(next); err != nil {
		return Identity{}, err
	}
	if err := l.users.SaveUsers(ctx, users); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// checkPassword compares password against stored. adopt is true when stored
// must be replaced by the hash of password.
func checkPassword(stored, password string) (adopt bool, err error) {
	if stored == "" {
		// an account without password adopts the first valid one
		if err := validatePassword(password); err != nil {
			return false, err
		}
		return true, nil
	}
	if _, err := bcrypt.Cost([]byte(stored)); err != nil {
		// clear text from older versions
		if stored != password {
			return false, ErrWrongPassword
		}
		return true, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return false, ErrWrongPassword
	}
	return false, nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return &ProviderError{Code: "WEAK_PASSWORD", Message: "Password should be at least 6 characters"}
	}
	return nil
}

func hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(h), nil
}
