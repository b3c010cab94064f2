package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// roleKey is the key used to store the authenticated user's role in the
// request context.
const roleKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetRoleFromContext retrieves the authenticated user's role from the Gin
// context. It returns the role and a boolean indicating if it was found.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return "", false
	}
	return role, true
}
