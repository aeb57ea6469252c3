package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo backs dev runs and tests. IDs ascend from 1 like the
// database-assigned ones.
type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byEmail: make(map[string]User)}
}

func (r *MemoryRepo) Create(ctx context.Context, email, password string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return 0, ErrEmailTaken
	}
	user := User{
		ID:        r.nextID,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.byEmail[email] = user
	return user.ID, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

var _ Repo = (*MemoryRepo)(nil)
