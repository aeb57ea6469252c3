package resumes

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new metadata row and returns the store-assigned id.
func (r *PGRepo) Create(ctx context.Context, rec Resume) (int64, error) {
	const query = `
INSERT INTO resumes (user_id, file_name, s3_key, uploaded_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		rec.UserID,
		rec.FileName,
		rec.StorageKey,
		rec.UploadedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByUser returns all rows for a user in insertion order.
func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, s3_key, uploaded_at
FROM resumes
WHERE user_id = $1
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var rec Resume
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FileName,
			&rec.StorageKey,
			&rec.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
