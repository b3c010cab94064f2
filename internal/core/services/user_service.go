package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/dto"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions a new account on behalf of an administrator.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers retrieves users, optionally filtered by role.
func (s *userService) ListUsers(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, role)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// UpdateUser updates an existing user's profile or active flag.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s for update: %w", userID, err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

// ChangePassword verifies the current password and replaces it.
func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %s for password change: %w", userID, err)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("current password does not match: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, newHash, userID); err != nil {
		s.LogError(ctx, err, "Failed to store new password", slog.String("user_id", userID))
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

// SetPassword replaces a user's password on behalf of an administrator.
// The old password is not required.
func (s *userService) SetPassword(ctx context.Context, userID string, req dto.SetPasswordRequest, requestingUserID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to find user %s for password reset: %w", userID, err)
	}

	newHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password for reset")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, newHash, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to store reset password", slog.String("user_id", userID))
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", userID), slog.String("reset_by", requestingUserID))
	return nil
}
