package ports

import (
	"context"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Role     string
	Password string
	// InspectorID is required when Role is "inspector".
	InspectorID string
	// SignupSecret must match the configured inspector signup secret when
	// Role is "inspector". Ignored for clients.
	SignupSecret string
}

// AccountService defines use-case operations for accounts and car lists.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AddCar appends a plate to the client's car list and returns the
	// updated list.
	AddCar(ctx context.Context, user *domain.User, plate string) ([]string, error)
	// RemoveCar removes a plate from the client's car list and returns the
	// updated list.
	RemoveCar(ctx context.Context, user *domain.User, plate string) ([]string, error)
}
