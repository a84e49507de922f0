package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for feed persistence.
var (
	// ErrFeedNotFound is returned when a feed post does not exist.
	ErrFeedNotFound = errors.New("feed not found")
	// ErrCommentNotFound is returned when a comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("feed already liked")
)

// FeedRepository defines the interface for feed, like and comment persistence.
type FeedRepository interface {
	// CreateFeed persists a new feed post.
	CreateFeed(ctx context.Context, feed *entity.Feed) error

	// FindFeedByID retrieves a feed post by its unique ID.
	FindFeedByID(ctx context.Context, id uuid.UUID) (*entity.Feed, error)

	// ListFeeds returns the public timeline, newest first.
	ListFeeds(ctx context.Context, limit, offset int) ([]*entity.Feed, error)

	// ListFeedsByGroup returns posts shared into a group, newest first.
	ListFeedsByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.Feed, error)

	// CreateLike adds a like and increments the post's like count.
	CreateLike(ctx context.Context, like *entity.FeedLike) error

	// DeleteLike removes a like and decrements the post's like count. Idempotent.
	DeleteLike(ctx context.Context, feedID, userID uuid.UUID) error

	// CreateComment persists a comment and increments the post's comment count.
	CreateComment(ctx context.Context, comment *entity.FeedComment) error

	// FindCommentByID retrieves a comment by its unique ID.
	FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.FeedComment, error)

	// ListComments returns a post's comments, oldest first.
	ListComments(ctx context.Context, feedID uuid.UUID, limit, offset int) ([]*entity.FeedComment, error)
}
