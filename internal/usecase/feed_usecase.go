package usecase

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFeedInput carries a new feed post.
type CreateFeedInput struct {
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url"`
	WorkoutID *uuid.UUID `json:"workout_id"`
	GroupID   *uuid.UUID `json:"group_id"`
}

// CreateCommentInput carries a new comment or reply.
type CreateCommentInput struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// FeedUsecase defines the interface for social feed use cases
type FeedUsecase interface {
	// CreateFeed publishes a post, optionally shared into a group.
	CreateFeed(ctx context.Context, userID uuid.UUID, input *CreateFeedInput) (*entity.Feed, error)

	// GetFeed returns one post.
	GetFeed(ctx context.Context, feedID uuid.UUID) (*entity.Feed, error)

	// ListFeeds returns the public timeline, newest first.
	ListFeeds(ctx context.Context, limit, offset int) ([]*entity.Feed, error)

	// LikeFeed adds the caller's like to a post.
	LikeFeed(ctx context.Context, userID, feedID uuid.UUID) error

	// UnlikeFeed removes the caller's like. Idempotent.
	UnlikeFeed(ctx context.Context, userID, feedID uuid.UUID) error

	// CommentFeed adds a comment, or a reply when input carries a parent ID.
	CommentFeed(ctx context.Context, userID, feedID uuid.UUID, input *CreateCommentInput) (*entity.FeedComment, error)

	// ListComments returns a post's comments, oldest first.
	ListComments(ctx context.Context, feedID uuid.UUID, limit, offset int) ([]*entity.FeedComment, error)
}
