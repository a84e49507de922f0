package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sharefit/internal/domain/entity"
	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultNotifyQueueSize   = 256
	defaultNotifyDispatchers = 4

	// Per-event routing budget. Routing touches the social graph and possibly
	// the fallback bridge, neither of which may stall the queue forever.
	notifyRouteTimeout = 10 * time.Second

	// The single broadcast channel for the public timeline.
	feedBroadcastChannel = "feed"
)

// notifierService routes domain events to live streams, with push fallback
// for user-targeted events that found no open stream. Events are queued and
// routed by a fixed dispatcher pool; producers never block on delivery and
// never see delivery errors.
type notifierService struct {
	registry   service.StreamRegistry
	fallback   service.PushFallback
	followRepo repository.FollowRepository
	logger     *slog.Logger

	queue    chan *entity.NotificationEvent
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewNotifierService creates the notification router and starts its
// dispatcher pool. Call Close on shutdown to drain and stop.
func NewNotifierService(
	registry service.StreamRegistry,
	fallback service.PushFallback,
	followRepo repository.FollowRepository,
	logger *slog.Logger,
	queueSize int,
	dispatchers int,
) usecase.Notifier {
	if queueSize <= 0 {
		queueSize = defaultNotifyQueueSize
	}
	if dispatchers <= 0 {
		dispatchers = defaultNotifyDispatchers
	}

	s := &notifierService{
		registry:   registry,
		fallback:   fallback,
		followRepo: followRepo,
		logger:     logger,
		queue:      make(chan *entity.NotificationEvent, queueSize),
		stopped:    make(chan struct{}),
	}

	s.wg.Add(dispatchers)
	for range dispatchers {
		go s.dispatchLoop()
	}

	return s
}

// Close stops accepting events, drains the queue and waits for dispatchers.
func (s *notifierService) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopped)
		close(s.queue)
	})
	s.wg.Wait()

	return nil
}

// enqueue hands an event to the dispatcher pool. A full queue drops the
// event with a warning; real-time notifications are not worth backpressure
// into domain transactions.
func (s *notifierService) enqueue(event *entity.NotificationEvent) {
	select {
	case <-s.stopped:
		return
	default:
	}

	select {
	case s.queue <- event:
	default:
		s.logger.Warn("notification queue full, dropping event",
			slog.String("kind", string(event.Kind)),
			slog.String("actor_id", event.ActorID.String()),
		)
	}
}

func (s *notifierService) dispatchLoop() {
	defer s.wg.Done()

	for event := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), notifyRouteTimeout)
		s.route(ctx, event)
		cancel()
	}
}

// route applies the delivery policy for one event, in deterministic order:
// self-suppression, single-user target, resource scope, broadcast, follower
// fan-out. Resource and broadcast routes are stream-only; user targets fall
// back to push when the event carries push copy.
func (s *notifierService) route(ctx context.Context, event *entity.NotificationEvent) {
	if event.TargetUserID != uuid.Nil {
		if event.TargetUserID == event.ActorID {
			return
		}
		s.routeToUser(ctx, event.TargetUserID, event)
	}

	if event.ResourceType != "" {
		s.registry.SendToScope(
			service.ResourceScope(event.ResourceType, event.ResourceID),
			event.StreamEvent,
			event.Payload,
		)
	}

	if event.Broadcast {
		s.registry.SendToBroadcast(feedBroadcastChannel, event.StreamEvent, event.Payload)
	}

	if event.FanOutFollowers {
		followerIDs, err := s.followRepo.ListFollowerIDs(ctx, event.ActorID)
		if err != nil {
			s.logger.Error("failed to resolve followers for fan-out",
				slog.String("kind", string(event.Kind)),
				slog.String("actor_id", event.ActorID.String()),
				slog.Any("error", err),
			)

			return
		}

		for _, followerID := range followerIDs {
			if followerID == event.ActorID || followerID == event.TargetUserID {
				continue
			}
			s.routeToUser(ctx, followerID, event)
		}
	}
}

// routeToUser delivers to one user: live stream first, push fallback second.
// Events without push copy are stream-only and silently miss offline users.
func (s *notifierService) routeToUser(ctx context.Context, userID uuid.UUID, event *entity.NotificationEvent) {
	if s.registry.SendToUser(userID, event.StreamEvent, event.Payload) {
		return
	}

	if event.Title == "" {
		return
	}

	req := &service.PushRequest{
		UserID:       userID,
		Title:        event.Title,
		Body:         event.Body,
		Kind:         event.Kind,
		Data:         event.Data,
		HighPriority: event.HighPriority,
	}
	if err := s.fallback.Publish(ctx, req); err != nil {
		s.logger.Error("push fallback publish failed",
			slog.String("kind", string(event.Kind)),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}

// --- Typed operations ---

// WorkoutStarted announces a new live workout to its viewers and the actor's followers.
func (s *notifierService) WorkoutStarted(_ context.Context, actor *entity.User, workout *entity.Workout) {
	s.enqueue(&entity.NotificationEvent{
		Kind:            entity.EventKindWorkoutStart,
		StreamEvent:     "workout:start",
		ActorID:         actor.ID,
		ResourceType:    service.ResourceWorkout,
		ResourceID:      workout.ID,
		FanOutFollowers: true,
		Title:           "운동 시작",
		Body:            fmt.Sprintf("%s님이 운동을 시작했습니다", actor.DisplayName),
		Payload: &usecase.WorkoutEventPayload{
			WorkoutID: workout.ID,
			UserID:    actor.ID,
			UserName:  actor.DisplayName,
			Name:      workout.Name,
			Status:    string(workout.Status),
		},
		Data: map[string]string{
			"kind":       string(entity.EventKindWorkoutStart),
			"workout_id": workout.ID.String(),
		},
	})
}

// WorkoutUpdated announces a logged set to the workout's live viewers.
func (s *notifierService) WorkoutUpdated(_ context.Context, workout *entity.Workout, set *entity.WorkoutSet) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindWorkoutUpdate,
		StreamEvent:  "workout:update",
		ActorID:      workout.UserID,
		ResourceType: service.ResourceWorkout,
		ResourceID:   workout.ID,
		Payload: &usecase.SetEventPayload{
			WorkoutID:    workout.ID,
			ExerciseName: set.ExerciseName,
			SetNumber:    set.SetNumber,
			WeightKg:     set.WeightKg,
			Reps:         set.Reps,
			TotalSets:    workout.TotalSets,
			TotalVolume:  workout.TotalVolume,
		},
	})
}

// WorkoutCompleted announces a finished workout to its viewers and the actor's followers.
func (s *notifierService) WorkoutCompleted(_ context.Context, actor *entity.User, workout *entity.Workout) {
	s.enqueue(&entity.NotificationEvent{
		Kind:            entity.EventKindWorkoutComplete,
		StreamEvent:     "workout:complete",
		ActorID:         actor.ID,
		ResourceType:    service.ResourceWorkout,
		ResourceID:      workout.ID,
		FanOutFollowers: true,
		Title:           "운동 완료",
		Body:            fmt.Sprintf("%s님이 %s 운동을 완료했습니다!", actor.DisplayName, workout.Name),
		Payload: &usecase.WorkoutEventPayload{
			WorkoutID:   workout.ID,
			UserID:      actor.ID,
			UserName:    actor.DisplayName,
			Name:        workout.Name,
			Status:      string(workout.Status),
			TotalSets:   workout.TotalSets,
			TotalVolume: workout.TotalVolume,
			DurationMin: workout.DurationMin,
		},
		Data: map[string]string{
			"kind":       string(entity.EventKindWorkoutComplete),
			"workout_id": workout.ID.String(),
		},
	})
}

// Cheer delivers a cheer message to the workout owner.
func (s *notifierService) Cheer(_ context.Context, actor *entity.User, workout *entity.Workout, message string) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindCheer,
		StreamEvent:  "cheer",
		ActorID:      actor.ID,
		TargetUserID: workout.UserID,
		Title:        "응원 도착!",
		Body:         fmt.Sprintf("%s: %s", actor.DisplayName, message),
		HighPriority: true,
		Payload: &usecase.CheerPayload{
			WorkoutID:    workout.ID,
			FromUserID:   actor.ID,
			FromUserName: actor.DisplayName,
			Message:      message,
		},
		Data: map[string]string{
			"kind":       string(entity.EventKindCheer),
			"workout_id": workout.ID.String(),
		},
	})
}

// FeedCreated announces a new post on the global feed and to the author's
// followers. The broadcast audience sees "feed:new", followers get the
// "feed:following" variant on their personal streams.
func (s *notifierService) FeedCreated(_ context.Context, actor *entity.User, feed *entity.Feed) {
	payload := &usecase.FeedEventPayload{
		FeedID:   feed.ID,
		UserID:   actor.ID,
		UserName: actor.DisplayName,
		Content:  feed.Content,
		ImageURL: feed.ImageURL,
		GroupID:  feed.GroupID,
	}

	s.enqueue(&entity.NotificationEvent{
		Kind:        entity.EventKindFeedNew,
		StreamEvent: "feed:new",
		ActorID:     actor.ID,
		Broadcast:   true,
		Payload:     payload,
	})
	s.enqueue(&entity.NotificationEvent{
		Kind:            entity.EventKindFeedNew,
		StreamEvent:     "feed:following",
		ActorID:         actor.ID,
		FanOutFollowers: true,
		Title:           "새 피드",
		Body:            fmt.Sprintf("%s님이 새 글을 올렸습니다: %s", actor.DisplayName, feed.Content),
		Data: map[string]string{
			"kind":    string(entity.EventKindFeedNew),
			"feed_id": feed.ID.String(),
		},
		Payload: payload,
	})
}

// FeedLiked notifies the post author of a new like. Self-likes are dropped by
// the router's self-suppression.
func (s *notifierService) FeedLiked(_ context.Context, actor *entity.User, feed *entity.Feed) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindFeedLike,
		StreamEvent:  "feed:like",
		ActorID:      actor.ID,
		TargetUserID: feed.UserID,
		Title:        "좋아요",
		Body:         fmt.Sprintf("%s님이 회원님의 게시물을 좋아합니다", actor.DisplayName),
		Payload: &usecase.LikeEventPayload{
			FeedID:    feed.ID,
			LikerID:   actor.ID,
			LikerName: actor.DisplayName,
		},
		Data: map[string]string{
			"kind":    string(entity.EventKindFeedLike),
			"feed_id": feed.ID.String(),
		},
	})
}

// FeedCommented notifies the post author of a new comment. When the comment
// is a reply, the parent comment's author additionally gets a reply
// notification, unless they are the post author and already got one.
func (s *notifierService) FeedCommented(_ context.Context, actor *entity.User, feed *entity.Feed, comment *entity.FeedComment, parentAuthorID uuid.UUID) {
	payload := &usecase.CommentEventPayload{
		FeedID:     feed.ID,
		CommentID:  comment.ID,
		AuthorID:   actor.ID,
		AuthorName: actor.DisplayName,
		Content:    comment.Content,
		ParentID:   comment.ParentID,
	}
	data := map[string]string{
		"kind":    string(entity.EventKindFeedComment),
		"feed_id": feed.ID.String(),
	}

	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindFeedComment,
		StreamEvent:  "feed:comment",
		ActorID:      actor.ID,
		TargetUserID: feed.UserID,
		Title:        "새 댓글",
		Body:         fmt.Sprintf("%s님이 댓글을 남겼습니다: %s", actor.DisplayName, comment.Content),
		Payload:      payload,
		Data:         data,
	})

	if comment.ParentID == nil || parentAuthorID == uuid.Nil || parentAuthorID == feed.UserID {
		return
	}

	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindFeedComment,
		StreamEvent:  "comment:reply",
		ActorID:      actor.ID,
		TargetUserID: parentAuthorID,
		Title:        "대댓글",
		Body:         fmt.Sprintf("%s님이 답글을 남겼습니다: %s", actor.DisplayName, comment.Content),
		Payload:      payload,
		Data:         data,
	})
}

// Followed notifies a user of a new follower.
func (s *notifierService) Followed(_ context.Context, follower *entity.User, followeeID uuid.UUID) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindFollow,
		StreamEvent:  "follow",
		ActorID:      follower.ID,
		TargetUserID: followeeID,
		Title:        "새 팔로워",
		Body:         fmt.Sprintf("%s님이 회원님을 팔로우하기 시작했습니다", follower.DisplayName),
		Payload: &usecase.FollowEventPayload{
			FollowerID:   follower.ID,
			FollowerName: follower.DisplayName,
		},
		Data: map[string]string{
			"kind":        string(entity.EventKindFollow),
			"follower_id": follower.ID.String(),
		},
	})
}

// GroupJoined announces a new member to the group's live viewers.
func (s *notifierService) GroupJoined(_ context.Context, actor *entity.User, group *entity.Group) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindGroupJoin,
		StreamEvent:  "group:join",
		ActorID:      actor.ID,
		ResourceType: service.ResourceGroup,
		ResourceID:   group.ID,
		Payload: &usecase.GroupEventPayload{
			GroupID:   group.ID,
			GroupName: group.Name,
			UserID:    actor.ID,
			UserName:  actor.DisplayName,
		},
	})
}

// GroupPosted announces a post shared into a group to the group's live viewers.
func (s *notifierService) GroupPosted(_ context.Context, actor *entity.User, group *entity.Group, feed *entity.Feed) {
	s.enqueue(&entity.NotificationEvent{
		Kind:         entity.EventKindGroupPost,
		StreamEvent:  "group:post",
		ActorID:      actor.ID,
		ResourceType: service.ResourceGroup,
		ResourceID:   group.ID,
		Payload: &usecase.GroupEventPayload{
			GroupID:   group.ID,
			GroupName: group.Name,
			UserID:    actor.ID,
			UserName:  actor.DisplayName,
			FeedID:    &feed.ID,
		},
	})
}
