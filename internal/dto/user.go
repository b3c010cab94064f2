package dto

import (
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
// Accounts are always provisioned by an administrator.
type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin mda_user officer"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	IsActive *bool   `json:"isActive"`
}

// ChangePasswordRequest carries a password change for the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// SetPasswordRequest carries an administrative password reset for
// another user.
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role string `form:"role" binding:"omitempty,oneof=admin mda_user officer"`
}

// UserResponse is the API representation of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID    string    `json:"userID"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
