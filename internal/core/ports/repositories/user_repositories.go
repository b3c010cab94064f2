package repositories

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// UserReader defines read operations for portal accounts.
type UserReader interface {
	// FindUserByID retrieves a user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, used by the login flow.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users, optionally restricted to one role.
	ListUsers(ctx context.Context, role *domain.Role) ([]domain.User, error)
}

// UserWriter defines write operations for portal accounts.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changes to name and active flag.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID, passwordHash, updatedBy string) error
}

// UserRepository combines all user repository operations.
type UserRepository interface {
	UserReader
	UserWriter
}
