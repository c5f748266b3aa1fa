package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

// UserRepositoryInterface persists the single session user record. A nil
// user means logged out and removes the key.
type UserRepositoryInterface interface {
	GetUser(ctx context.Context) *models.User
	SaveUser(ctx context.Context, user *models.User) error
}

type UserRepository struct {
	logger *logger.Logger
	store  kvstore.Store
}

// NewUserRepository creates a new UserRepository with the given store and logger
func NewUserRepository(store kvstore.Store, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		logger: logger.WithComponent("user_repository"),
		store:  store,
	}
}

// GetUser returns the persisted user, or nil when absent or unparseable.
// Absence of a user is equivalent to logged out, never an error state.
func (r *UserRepository) GetUser(ctx context.Context) *models.User {
	data, err := r.store.Get(ctx, KeyUser)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("Failed to read user", "error", err)
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		r.logger.Error("Failed to parse stored user, degrading to logged out", "error", err)
		return nil
	}

	return &user
}

// SaveUser persists the user record, or removes it when user is nil.
func (r *UserRepository) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		if err := r.store.Remove(ctx, KeyUser); err != nil {
			r.logger.Error("Failed to remove user", "error", err)
			return fmt.Errorf("failed to remove user: %v", err)
		}
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %v", err)
	}

	if err := r.store.Set(ctx, KeyUser, string(data)); err != nil {
		r.logger.Error("Failed to persist user", "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to persist user: %v", err)
	}

	r.logger.Debug("User persisted", "user_id", user.ID, "logged_in", user.IsLoggedIn)
	return nil
}
