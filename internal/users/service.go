package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service contains identity and session logic.
type Service struct {
	Repo     Repo
	Sessions Sessions
}

// NewService constructs a Service.
func NewService(repo Repo, sessions Sessions) *Service {
	return &Service{Repo: repo, Sessions: sessions}
}

// Register creates a new user and points the session at it. Email uniqueness
// is checked here, at registration time only; the store itself does not
// enforce it (except the Postgres backend's schema constraint).
func (s *Service) Register(ctx context.Context, email, name string) (User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return User{}, fmt.Errorf("%w: email and name are required", ErrInvalidInput)
	}

	_, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	user := User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	if err := s.Sessions.Set(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login looks the user up by email and points the session at it.
//
// This is an identity lookup, not authentication: no credential is verified.
// The persisted user record carries no secret to check against, so a password
// supplied by the client is ignored. Do not treat this as a security model.
func (s *Service) Login(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if err := s.Sessions.Set(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout clears the session pointer.
func (s *Service) Logout(ctx context.Context) error {
	return s.Sessions.Clear(ctx)
}

// Current returns the active user, if any.
func (s *Service) Current(ctx context.Context) (User, bool, error) {
	return s.Sessions.Current(ctx)
}

// CurrentUserID satisfies the session middleware's resolver.
func (s *Service) CurrentUserID(ctx context.Context) (string, bool, error) {
	user, ok, err := s.Sessions.Current(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	return user.ID, true, nil
}
