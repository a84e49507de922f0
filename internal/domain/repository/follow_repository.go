package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlreadyFollowing is returned when creating a follow edge that exists.
var ErrAlreadyFollowing = errors.New("already following this user")

// FollowRepository defines the interface for the social graph.
type FollowRepository interface {
	// CreateFollow adds a follower -> followee edge.
	CreateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// DeleteFollow removes a follower -> followee edge. Idempotent.
	DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// IsFollowing reports whether the edge exists.
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// ListFollowerIDs returns the IDs of everyone following the user.
	// This is the broadcast fan-out read used by the notification router.
	ListFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListFollowers returns follower users with pagination.
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)

	// ListFollowing returns followed users with pagination.
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
}
