// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when registering an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile updates the mutable profile fields of a user.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePushToken stores the user's push token, replacing any previous one.
	UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error

	// ClearPushToken removes the user's push token. Called on sign-out and
	// when the push provider reports the token permanently invalid.
	ClearPushToken(ctx context.Context, userID uuid.UUID) error
}
