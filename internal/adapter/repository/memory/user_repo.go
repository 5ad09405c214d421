package memory

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"user-api/internal/domain/user"
)

// UserRepository is an append-only, process-lifetime user store.
// Create assigns IDs under the write lock so no two users share an ID, and
// List copies under the read lock so callers always see whole records.
type UserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	nextID int64
	log    *zap.Logger
}

// NewUserRepository creates an empty store whose first ID is 1.
func NewUserRepository(log *zap.Logger) *UserRepository {
	return &UserRepository{
		users:  make([]user.User, 0, 16),
		nextID: 1,
		log:    log,
	}
}

// Create stores a copy of u with the next ID and returns the stored record.
// Any ID already set on u is ignored.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	stored := user.User{
		ID:    r.nextID,
		Name:  u.Name,
		Email: u.Email,
	}
	r.nextID++
	r.users = append(r.users, stored)
	r.mu.Unlock()

	r.log.Debug("user appended to store", zap.Int64("id", stored.ID))
	return &stored, nil
}

// List returns a snapshot of all users in creation order.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
