package repository

import (
	"context"
	"sync"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/utils"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	ids     IDGenerator
	byEmail map[string]entities.User
}

func NewMemoryUserRepository(ids IDGenerator) UserRepository {
	return &memoryUserRepository{
		ids:     ids,
		byEmail: make(map[string]entities.User),
	}
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[utils.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user", id)
}

func (r *memoryUserRepository) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = utils.NormalizeEmail(user.Email)
	if _, exists := r.byEmail[user.Email]; exists {
		return apperrors.NewConflictError("email already exists")
	}
	if user.ID == "" {
		user.ID = r.ids.NewID(PrefixUser + "_" + string(user.Role))
	}
	r.byEmail[user.Email] = *user
	return nil
}
