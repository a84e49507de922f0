package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sharefit/internal/domain/entity"
	"sharefit/internal/domain/service"
	mockRepo "sharefit/internal/mocks/repository"
	mockSvc "sharefit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotifierService(t *testing.T) (
	*notifierService,
	*mockSvc.MockStreamRegistry,
	*mockSvc.MockPushFallback,
	*mockRepo.MockFollowRepository,
) {
	registry := mockSvc.NewMockStreamRegistry(t)
	fallback := mockSvc.NewMockPushFallback(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	notifier := NewNotifierService(registry, fallback, followRepo, logger, 64, 1).(*notifierService)

	return notifier, registry, fallback, followRepo
}

func TestNotifierService_Cheer_DeliveredLive_NoPush(t *testing.T) {
	notifier, registry, _, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New()}

	// An open stream consumes the event; the fallback mock would fail the
	// test if Publish were called.
	registry.EXPECT().SendToUser(workout.UserID, "cheer", mock.Anything).Return(true)

	notifier.Cheer(context.Background(), actor, workout, "go!")
	require.NoError(t, notifier.Close())
}

func TestNotifierService_Cheer_Offline_FallsBackToPush(t *testing.T) {
	notifier, registry, fallback, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New()}

	registry.EXPECT().SendToUser(workout.UserID, "cheer", mock.Anything).Return(false)

	var published *service.PushRequest
	fallback.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.PushRequest) {
			published = req
		}).
		Return(nil)

	notifier.Cheer(context.Background(), actor, workout, "go!")
	require.NoError(t, notifier.Close())

	require.NotNil(t, published)
	assert.Equal(t, workout.UserID, published.UserID)
	assert.Equal(t, "응원 도착!", published.Title)
	assert.Contains(t, published.Body, "go!")
	assert.Contains(t, published.Body, "minsu")
	assert.True(t, published.HighPriority)
	assert.Equal(t, entity.EventKindCheer, published.Kind)
}

func TestNotifierService_FeedLiked_SelfLikeSuppressed(t *testing.T) {
	notifier, _, _, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: actor.ID}

	// Neither the registry nor the fallback may be touched.
	notifier.FeedLiked(context.Background(), actor, feed)
	require.NoError(t, notifier.Close())
}

func TestNotifierService_FeedLiked_OfflineAuthorGetsPush(t *testing.T) {
	notifier, registry, fallback, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}

	registry.EXPECT().SendToUser(feed.UserID, "feed:like", mock.Anything).Return(false)

	var published *service.PushRequest
	fallback.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.PushRequest) {
			published = req
		}).
		Return(nil)

	notifier.FeedLiked(context.Background(), actor, feed)
	require.NoError(t, notifier.Close())

	require.NotNil(t, published)
	assert.Equal(t, "좋아요", published.Title)
	assert.Contains(t, published.Body, "minsu")
}

func TestNotifierService_WorkoutStarted_OfflineFollowerGetsPush(t *testing.T) {
	notifier, registry, fallback, followRepo := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: actor.ID, Name: "Push day"}
	online := uuid.New()
	offline := uuid.New()

	registry.EXPECT().
		SendToScope(service.ResourceScope(service.ResourceWorkout, workout.ID), "workout:start", mock.Anything).
		Return()
	followRepo.EXPECT().ListFollowerIDs(mock.Anything, actor.ID).Return([]uuid.UUID{online, offline}, nil)
	registry.EXPECT().SendToUser(online, "workout:start", mock.Anything).Return(true)
	registry.EXPECT().SendToUser(offline, "workout:start", mock.Anything).Return(false)

	var published *service.PushRequest
	fallback.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.PushRequest) {
			published = req
		}).
		Return(nil)

	notifier.WorkoutStarted(context.Background(), actor, workout)
	require.NoError(t, notifier.Close())

	require.NotNil(t, published)
	assert.Equal(t, offline, published.UserID)
	assert.Equal(t, "운동 시작", published.Title)
	assert.Contains(t, published.Body, "minsu님이 운동을 시작했습니다")
}

func TestNotifierService_WorkoutCompleted_OfflineFollowersGetPush(t *testing.T) {
	notifier, registry, fallback, followRepo := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: actor.ID, Name: "Leg day"}
	online := uuid.New()
	offline := uuid.New()

	registry.EXPECT().
		SendToScope(service.ResourceScope(service.ResourceWorkout, workout.ID), "workout:complete", mock.Anything).
		Return()
	followRepo.EXPECT().ListFollowerIDs(mock.Anything, actor.ID).Return([]uuid.UUID{online, offline}, nil)
	registry.EXPECT().SendToUser(online, "workout:complete", mock.Anything).Return(true)
	registry.EXPECT().SendToUser(offline, "workout:complete", mock.Anything).Return(false)

	var published *service.PushRequest
	fallback.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.PushRequest) {
			published = req
		}).
		Return(nil)

	notifier.WorkoutCompleted(context.Background(), actor, workout)
	require.NoError(t, notifier.Close())

	require.NotNil(t, published)
	assert.Equal(t, offline, published.UserID)
	assert.Equal(t, "운동 완료", published.Title)
	assert.Contains(t, published.Body, "Leg day")
}

func TestNotifierService_FeedCreated_BroadcastAndFollowerStreams(t *testing.T) {
	notifier, registry, _, followRepo := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: actor.ID, Content: "new PR"}
	follower := uuid.New()

	registry.EXPECT().SendToBroadcast("feed", "feed:new", mock.Anything).Return()
	followRepo.EXPECT().ListFollowerIDs(mock.Anything, actor.ID).Return([]uuid.UUID{follower}, nil)
	registry.EXPECT().SendToUser(follower, "feed:following", mock.Anything).Return(true)

	notifier.FeedCreated(context.Background(), actor, feed)
	require.NoError(t, notifier.Close())
}

func TestNotifierService_FeedCreated_OfflineFollowersGetPush(t *testing.T) {
	notifier, registry, fallback, followRepo := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: actor.ID, Content: "new PR"}
	followers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	registry.EXPECT().SendToBroadcast("feed", "feed:new", mock.Anything).Return()
	followRepo.EXPECT().ListFollowerIDs(mock.Anything, actor.ID).Return(followers, nil)
	for _, followerID := range followers {
		registry.EXPECT().SendToUser(followerID, "feed:following", mock.Anything).Return(false)
	}

	var published []*service.PushRequest
	fallback.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.PushRequest) {
			published = append(published, req)
		}).
		Return(nil).
		Times(3)

	notifier.FeedCreated(context.Background(), actor, feed)
	require.NoError(t, notifier.Close())

	require.Len(t, published, 3)
	for _, req := range published {
		assert.Equal(t, "새 피드", req.Title)
		assert.Contains(t, req.Body, "minsu")
		assert.Contains(t, req.Body, "new PR")
		assert.NotEqual(t, actor.ID, req.UserID)
	}
}

func TestNotifierService_FeedCommented_ReplyNotifiesAuthorAndParentAuthor(t *testing.T) {
	notifier, registry, _, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	parentID := uuid.New()
	parentAuthorID := uuid.New()
	comment := &entity.FeedComment{ID: uuid.New(), FeedID: feed.ID, UserID: actor.ID, ParentID: &parentID, Content: "nice"}

	registry.EXPECT().SendToUser(feed.UserID, "feed:comment", mock.Anything).Return(true)
	registry.EXPECT().SendToUser(parentAuthorID, "comment:reply", mock.Anything).Return(true)

	notifier.FeedCommented(context.Background(), actor, feed, comment, parentAuthorID)
	require.NoError(t, notifier.Close())
}

func TestNotifierService_FeedCommented_ReplyToOwnPostAuthorNotifiedOnce(t *testing.T) {
	notifier, registry, _, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	parentID := uuid.New()
	comment := &entity.FeedComment{ID: uuid.New(), FeedID: feed.ID, UserID: actor.ID, ParentID: &parentID, Content: "nice"}

	// The parent comment belongs to the post author, who must see a single
	// comment notification rather than a comment plus a reply.
	registry.EXPECT().SendToUser(feed.UserID, "feed:comment", mock.Anything).Return(true)

	notifier.FeedCommented(context.Background(), actor, feed, comment, feed.UserID)
	require.NoError(t, notifier.Close())
}

func TestNotifierService_GroupJoined_ScopeNeverPushes(t *testing.T) {
	notifier, registry, _, _ := createTestNotifierService(t)

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	group := &entity.Group{ID: uuid.New(), Name: "morning crew"}

	registry.EXPECT().
		SendToScope(service.ResourceScope(service.ResourceGroup, group.ID), "group:join", mock.Anything).
		Return()

	notifier.GroupJoined(context.Background(), actor, group)
	require.NoError(t, notifier.Close())
}

func TestNotifierService_QueueFull_DropsEvent(t *testing.T) {
	registry := mockSvc.NewMockStreamRegistry(t)
	fallback := mockSvc.NewMockPushFallback(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	notifier := &notifierService{
		registry:   registry,
		fallback:   fallback,
		followRepo: followRepo,
		logger:     logger,
		queue:      make(chan *entity.NotificationEvent, 1),
		stopped:    make(chan struct{}),
	}

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New()}

	// No dispatcher is draining, so the second event hits a full queue and
	// must be dropped without blocking.
	notifier.Cheer(context.Background(), actor, workout, "one")
	notifier.Cheer(context.Background(), actor, workout, "two")

	assert.Len(t, notifier.queue, 1)
}

func TestNotifierService_EnqueueAfterCloseIsNoop(t *testing.T) {
	notifier, _, _, _ := createTestNotifierService(t)
	require.NoError(t, notifier.Close())

	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	workout := &entity.Workout{ID: uuid.New(), UserID: uuid.New()}

	// Must not panic on the closed queue and must not touch any dependency.
	notifier.Cheer(context.Background(), actor, workout, "late")
}
