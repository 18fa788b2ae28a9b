// Package auth manages the single-user session: credential verification,
// session persistence, and logout. The session is a convenience gate for
// the CLI, not a security boundary.
package auth

import (
	"context"
	"encoding/json"
	"strings"

	"tasker/internal/domain"
	"tasker/internal/errors"
	"tasker/internal/logging"
	"tasker/internal/storage"
	"tasker/internal/validation"
)

// Provider verifies credentials and produces the authenticated user
type Provider interface {
	// Login verifies the credentials and returns the resulting user.
	// A credential mismatch returns an AppError of type Credentials.
	Login(ctx context.Context, username, email, password string) (*domain.User, error)
}

// DemoProvider accepts a single fixed credential pair. It stands in for a
// real identity backend during evaluation.
type DemoProvider struct {
	email    string
	password string
}

// NewDemoProvider creates a provider accepting the built-in demo credentials
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{
		email:    "test@test.com",
		password: "test123",
	}
}

// Login implements Provider. Any non-empty username is accepted as long as
// the email and password match the demo pair.
func (p *DemoProvider) Login(ctx context.Context, username, email, password string) (*domain.User, error) {
	if email != p.email || password != p.password {
		return nil, errors.NewCredentialsError()
	}
	return &domain.User{Username: username, Email: email}, nil
}

// Store persists the current session and delegates credential checks to a
// Provider.
type Store struct {
	kv       storage.Store
	provider Provider
	current  *domain.User
}

// NewStore creates a session store and restores any persisted session
func NewStore(ctx context.Context, kv storage.Store, provider Provider) (*Store, error) {
	s := &Store{
		kv:       kv,
		provider: provider,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt session record is treated as logged out
		logging.Debugf("auth: discarding unreadable session record: %v\n", err)
		return nil
	}
	s.current = &user
	return nil
}

// Login verifies the credentials, persists the session on success, and
// returns the authenticated user. All three fields are required.
func (s *Store) Login(ctx context.Context, username, email, password string) (*domain.User, error) {
	verr := validation.NewValidationError()
	if strings.TrimSpace(username) == "" {
		verr.AddRequiredError("username")
	}
	if strings.TrimSpace(email) == "" {
		verr.AddRequiredError("email")
	}
	if password == "" {
		verr.AddRequiredError("password")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	user, err := s.provider.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return nil, errors.NewStorageError("encode session", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(encoded)); err != nil {
		return nil, err
	}

	s.current = user
	return user, nil
}

// Logout clears the persisted session. Logging out while already logged out
// is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyUser); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// Current returns the active session's user, or nil when logged out
func (s *Store) Current() *domain.User {
	return s.current
}

// IsAuthenticated reports whether a session is active
func (s *Store) IsAuthenticated() bool {
	return s.current != nil
}
