package usecase

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
)

// Notifier is the single entry point domain services use to announce events.
// Every method is fire-and-forget: it enqueues the event and returns
// immediately, and no delivery failure ever reaches the caller.
type Notifier interface {
	// WorkoutStarted announces a new live workout to its viewers and the
	// actor's followers.
	WorkoutStarted(ctx context.Context, actor *entity.User, workout *entity.Workout)

	// WorkoutUpdated announces a logged set to the workout's live viewers.
	WorkoutUpdated(ctx context.Context, workout *entity.Workout, set *entity.WorkoutSet)

	// WorkoutCompleted announces a finished workout to its viewers and the
	// actor's followers.
	WorkoutCompleted(ctx context.Context, actor *entity.User, workout *entity.Workout)

	// Cheer delivers a cheer message to the workout owner.
	Cheer(ctx context.Context, actor *entity.User, workout *entity.Workout, message string)

	// FeedCreated announces a new post on the global feed and to the
	// author's followers.
	FeedCreated(ctx context.Context, actor *entity.User, feed *entity.Feed)

	// FeedLiked notifies the post author of a new like. Likes on one's own
	// post are suppressed.
	FeedLiked(ctx context.Context, actor *entity.User, feed *entity.Feed)

	// FeedCommented notifies the post author of a new comment and, for a
	// reply, the parent comment's author as well.
	FeedCommented(ctx context.Context, actor *entity.User, feed *entity.Feed, comment *entity.FeedComment, parentAuthorID uuid.UUID)

	// Followed notifies a user of a new follower.
	Followed(ctx context.Context, follower *entity.User, followeeID uuid.UUID)

	// GroupJoined announces a new member to the group's live viewers.
	GroupJoined(ctx context.Context, actor *entity.User, group *entity.Group)

	// GroupPosted announces a post shared into a group to the group's live viewers.
	GroupPosted(ctx context.Context, actor *entity.User, group *entity.Group, feed *entity.Feed)
}
