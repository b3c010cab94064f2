package services

import (
	"context"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users, optionally filtered by role.
	ListUsers(ctx context.Context, role *domain.Role) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser provisions a new account. Admin only.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates an existing user's profile or active flag.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// ChangePassword verifies the current password and replaces it.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// SetPassword replaces a user's password without checking the old
	// one. Admin only; used to reset lost credentials.
	SetPassword(ctx context.Context, userID string, req dto.SetPasswordRequest, requestingUserID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
