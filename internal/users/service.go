package users

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not verify.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service contains signup and login logic.
type Service struct {
	Repo     Repo
	Verifier CredentialVerifier
}

func NewService(repo Repo, verifier CredentialVerifier) *Service {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &Service{Repo: repo, Verifier: verifier}
}

// Signup creates a new account and returns its id. Duplicate emails yield
// ErrEmailTaken and leave the original record unchanged.
func (s *Service) Signup(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(email)
	stored, err := s.Verifier.Store(password)
	if err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, email, stored)
}

// Login succeeds iff the email exists and the password verifies against the
// stored value.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !s.Verifier.Verify(user.Password, password) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
