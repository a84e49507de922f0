package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token does not exist or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for login session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshToken retrieves a refresh token by its hash.
	FindRefreshToken(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes a single refresh token by its hash. Idempotent.
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUser removes every session of a user (sign-out everywhere).
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error
}
