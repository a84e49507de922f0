// Package usecase defines the application-level interfaces of the project.
package usecase

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is an access/refresh token pair issued on login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	DisplayName     string `json:"display_name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UserUsecase defines the interface for account, session and social graph use cases
type UserUsecase interface {
	// Register creates a new account and returns the created user.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*entity.User, *TokenPair, error)

	// RefreshTokens rotates a refresh token into a fresh token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout invalidates the session and clears the user's push token.
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error

	// GetProfile returns a user's public profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile updates the caller's profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// RegisterPushToken stores the caller's device push token, last write wins.
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error

	// Follow makes the caller follow another user.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes a follow edge. Idempotent.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// ListFollowers returns the user's followers.
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)

	// ListFollowing returns the users the user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
}
