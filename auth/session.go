package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/etnz/budget"
	"github.com/sirupsen/logrus"
)

// Session holds the signed in identity, if any, and notifies subscribers of
// every change.
//
// The zero value is a signed out session.
type Session struct {
	mu      sync.Mutex
	current *Identity
	nextID  int
	subs    map[int]func(*Identity)
}

// Current returns the signed in identity, or nil.
func (s *Session) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Subscribe calls fn with the current identity now, then on every change.
// The returned function stops the notifications.
func (s *Session) Subscribe(fn func(*Identity)) (unsubscribe func()) {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(*Identity))
	}
	key := s.nextID
	s.nextID++
	s.subs[key] = fn
	s.mu.Unlock()

	fn(s.Current())
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
	}
}

// Start signs id in.
func (s *Session) Start(id Identity) { s.set(&id) }

// End signs out.
func (s *Session) End() { s.set(nil) }

func (s *Session) set(id *Identity) {
	s.mu.Lock()
	s.current = id
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fns := make([]func(*Identity), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, s.subs[k])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(s.Current())
	}
}

// SessionFile persists a session across invocations of the command line.
type SessionFile string

// Read returns the saved identity, or nil when there is none.
func (f SessionFile) Read() (*Identity, error) {
	data, err := os.ReadFile(string(f))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read session: %w", err)
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("could not decode session %q: %w", f, err)
	}
	return &id, nil
}

// Write saves id, readable by the owner only.
func (f SessionFile) Write(id Identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(string(f)), 0o700); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}
	return os.WriteFile(string(f), data, 0o600)
}

// Remove deletes the saved session. A missing file is not an error.
func (f SessionFile) Remove() error {
	if err := os.Remove(string(f)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove session: %w", err)
	}
	return nil
}

// Open starts s from the saved identity, then keeps the file in sync with s.
func (f SessionFile) Open(s *Session) (unsubscribe func(), err error) {
	saved, err := f.Read()
	if err != nil {
		return nil, err
	}
	if saved != nil {
		s.Start(*saved)
	}
	return s.Subscribe(func(id *Identity) {
		var err error
		if id == nil {
			err = f.Remove()
		} else {
			err = f.Write(*id)
		}
		if err != nil {
			logrus.WithError(err).Warn("session not persisted")
		}
	}), nil
}

// SyncUser makes sure a user record exists whose id is the provider uid of
// id, and returns it without its password.
//
// A record found by email under another id is re-keyed to the uid.
func SyncUser(ctx context.Context, users UserStore, id Identity) (budget.User, error) {
	all, err := users.Users(ctx)
	if err != nil {
		return budget.User{}, err
	}
	i := slices.IndexFunc(all, func(u budget.User) bool { return u.ID == id.UID })
	if i < 0 && id.Email != "" {
		i = slices.IndexFunc(all, func(u budget.User) bool { return u.Email == id.Email })
	}

	switch {
	case i < 0:
		all = append(all, budget.User{ID: id.UID, Email: id.Email, CreatedAt: time.Now().UTC()})
		i = len(all) - 1
	case all[i].ID != id.UID:
		logrus.WithFields(logrus.Fields{"from": all[i].ID, "to": id.UID}).Info("user re-keyed to provider id")
		all[i].ID = id.UID
	default:
		return all[i].Sanitized(), nil
	}
	if err := users.SaveUsers(ctx, all); err != nil {
		return budget.User{}, fmt.Errorf("could not sync user: %w", err)
	}
	return all[i].Sanitized(), nil
}
