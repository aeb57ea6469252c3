package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new user and returns the store-assigned id.
func (r *PGRepo) Create(ctx context.Context, email, password string) (int64, error) {
	const query = `
INSERT INTO users (email, password, created_at)
VALUES ($1, $2, now())
RETURNING id`

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, email, password).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// GetByEmail returns at most one user matching email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, password, created_at
FROM users
WHERE email = $1
LIMIT 1`

	var user User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
