package resumes

import (
	"context"
	"sync"
)

// MemoryRepo backs dev runs and tests. IDs ascend from 1 and listing order
// is insertion order, matching the database behavior.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Create(ctx context.Context, rec Resume) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, rec)
	return rec.ID, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID int64) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Resume
	for _, rec := range r.rows {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
