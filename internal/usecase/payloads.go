package usecase

import "github.com/google/uuid"

// Stream payload types. These are the JSON documents written on live streams,
// so field names are part of the client contract.

// WorkoutEventPayload describes a workout lifecycle event.
type WorkoutEventPayload struct {
	WorkoutID   uuid.UUID `json:"workout_id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Name        string    `json:"name,omitempty"`
	Status      string    `json:"status,omitempty"`
	TotalSets   int       `json:"total_sets,omitempty"`
	TotalVolume float64   `json:"total_volume,omitempty"`
	DurationMin int       `json:"duration_min,omitempty"`
}

// SetEventPayload describes one logged set on a live workout.
type SetEventPayload struct {
	WorkoutID    uuid.UUID `json:"workout_id"`
	ExerciseName string    `json:"exercise_name"`
	SetNumber    int       `json:"set_number"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	TotalSets    int       `json:"total_sets"`
	TotalVolume  float64   `json:"total_volume"`
}

// CheerPayload carries a cheer to the workout owner.
type CheerPayload struct {
	WorkoutID    uuid.UUID `json:"workout_id"`
	FromUserID   uuid.UUID `json:"from_user_id"`
	FromUserName string    `json:"from_user_name"`
	Message      string    `json:"message"`
}

// FeedEventPayload describes a new feed post.
type FeedEventPayload struct {
	FeedID   uuid.UUID  `json:"feed_id"`
	UserID   uuid.UUID  `json:"user_id"`
	UserName string     `json:"user_name"`
	Content  string     `json:"content"`
	ImageURL string     `json:"image_url,omitempty"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
}

// LikeEventPayload describes a new like on a post.
type LikeEventPayload struct {
	FeedID    uuid.UUID `json:"feed_id"`
	LikerID   uuid.UUID `json:"liker_id"`
	LikerName string    `json:"liker_name"`
}

// CommentEventPayload describes a new comment or reply.
type CommentEventPayload struct {
	FeedID     uuid.UUID  `json:"feed_id"`
	CommentID  uuid.UUID  `json:"comment_id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Content    string     `json:"content"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
}

// FollowEventPayload describes a new follower.
type FollowEventPayload struct {
	FollowerID   uuid.UUID `json:"follower_id"`
	FollowerName string    `json:"follower_name"`
}

// GroupEventPayload describes a group membership or group post event.
type GroupEventPayload struct {
	GroupID   uuid.UUID  `json:"group_id"`
	GroupName string     `json:"group_name"`
	UserID    uuid.UUID  `json:"user_id"`
	UserName  string     `json:"user_name"`
	FeedID    *uuid.UUID `json:"feed_id,omitempty"`
}
