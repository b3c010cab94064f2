package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/apperrors"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portsrepo "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/repositories"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/platform/config"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/utils"
)

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies email/password credentials and returns the
// matching user. A missing user, wrong password and disabled account all
// fail with ErrUnauthorized so callers cannot probe for accounts.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed, password mismatch", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if !user.IsActive {
		s.LogWarn(ctx, "Login rejected for disabled account", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return user, nil
}

// GenerateAccessToken issues a signed JWT carrying the user's role.
func (s *authService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}
