package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// UserRepo is an in-memory domain.UserRepository keyed by open ID.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepo creates an empty UserRepo.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]domain.User)}
}

// Upsert keeps the stored ID and creation time of an existing user.
func (r *UserRepo) Upsert(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[user.OpenID]; ok {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	}
	r.users[user.OpenID] = user
	return user, nil
}

func (r *UserRepo) GetByOpenID(_ context.Context, openID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[openID]
	if !ok {
		return domain.User{}, fmt.Errorf("memory.UserRepo.GetByOpenID: %w", domain.ErrNotFound)
	}
	return user, nil
}

var _ domain.UserRepository = (*UserRepo)(nil)
