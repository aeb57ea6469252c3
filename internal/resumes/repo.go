package resumes

import "context"

// Repo defines persistence operations for resume metadata. No update or
// delete surface is exposed.
type Repo interface {
	Create(ctx context.Context, rec Resume) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
}
