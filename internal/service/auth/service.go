// Package auth implements registration, login and token validation for the
// couple's two accounts.
package auth

import (
	"context"
	"log/slog"

	"github.com/nuestra-historia/backend/internal/auth"
	"github.com/nuestra-historia/backend/internal/config"
	"github.com/nuestra-historia/backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateToken(user *domain.User) (string, error)
	ValidateToken(token string) (auth.Identity, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken checks a session token and returns the identity it asserts.
func (s *Service) ValidateToken(token string) (auth.Identity, error) {
	return s.jwt.ValidateToken(token)
}
