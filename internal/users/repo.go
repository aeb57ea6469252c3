package users

import (
	"context"
	"errors"
)

var (
	// ErrEmailTaken is returned when the unique email constraint rejects a
	// signup. The original row is left untouched.
	ErrEmailTaken = errors.New("email already exists")
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// Repo defines persistence operations for users. No update or delete surface
// is exposed.
type Repo interface {
	Create(ctx context.Context, email, password string) (int64, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
