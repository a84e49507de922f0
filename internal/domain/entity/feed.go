// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feed is a post on the public timeline, optionally linked to a workout
// and optionally shared into a group.
type Feed struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"image_url,omitempty"`
	WorkoutID    *uuid.UUID `json:"workout_id,omitempty"` // Set when the post shares a logged workout.
	GroupID      *uuid.UUID `json:"group_id,omitempty"`   // Set when the post is shared into a group.
	LikeCount    int        `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FeedLike marks that a user liked a feed post. One like per user per post.
type FeedLike struct {
	FeedID    uuid.UUID `json:"feed_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedComment is a comment on a feed post. A non-nil ParentID makes it a reply.
type FeedComment struct {
	ID        uuid.UUID  `json:"id"`
	FeedID    uuid.UUID  `json:"feed_id"`
	UserID    uuid.UUID  `json:"user_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
}
