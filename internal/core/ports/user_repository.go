package ports

import (
	"context"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already stored.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateCars replaces the user's full car list (last-writer-wins).
	UpdateCars(ctx context.Context, id string, cars []string) error
}
