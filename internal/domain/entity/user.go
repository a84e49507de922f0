// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single account.
type User struct {
	ID              uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the user.
	Email           string    `json:"email"`             // The user's login identifier.
	PasswordHash    string    `json:"-"`                 // Bcrypt hash of the user's password. Never serialized.
	DisplayName     string    `json:"display_name"`      // The name shown to other users.
	Bio             string    `json:"bio"`               // Free-form profile text.
	ProfileImageURL string    `json:"profile_image_url"` // URL of the user's profile image in object storage.
	PushToken       string    `json:"-"`                 // Device push token. At most one active token per user, last registered wins.
	IsActive        bool      `json:"is_active"`         // False once the account is deactivated.
	FollowerCount   int       `json:"follower_count"`    // Denormalized follower count.
	FollowingCount  int       `json:"following_count"`   // Denormalized following count.
	CreatedAt       time.Time `json:"created_at"`        // Timestamp of account creation.
	UpdatedAt       time.Time `json:"updated_at"`        // Timestamp of the last modification.
}

// Follow represents a directed edge in the social graph: follower -> followee.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RefreshToken is a persisted login session token.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
