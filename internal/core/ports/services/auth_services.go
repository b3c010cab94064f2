package services

import (
	"context"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// AuthSvcFacade defines the interface for authentication services.
type AuthSvcFacade interface {
	// Authenticate verifies email/password credentials and returns the
	// matching user. A disabled account fails the same way as a bad
	// password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
