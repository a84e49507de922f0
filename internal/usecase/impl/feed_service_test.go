package impl

import (
	"context"
	"testing"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	mockRepo "sharefit/internal/mocks/repository"
	mockUC "sharefit/internal/mocks/usecase"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedService(t *testing.T) (
	usecase.FeedUsecase,
	*mockRepo.MockFeedRepository,
	*mockRepo.MockGroupRepository,
	*mockRepo.MockUserRepository,
	*mockUC.MockNotifier,
) {
	feedRepo := mockRepo.NewMockFeedRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUC.NewMockNotifier(t)

	service := NewFeedService(feedRepo, groupRepo, userRepo, notifier)

	return service, feedRepo, groupRepo, userRepo, notifier
}

func TestFeedService_CreateFeed_AnnouncesOnTimeline(t *testing.T) {
	service, feedRepo, _, userRepo, notifier := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().CreateFeed(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().FeedCreated(ctx, actor, mock.Anything).Return()

	feed, err := service.CreateFeed(ctx, actor.ID, &usecase.CreateFeedInput{Content: "new PR today"})

	require.NoError(t, err)
	assert.Equal(t, "new PR today", feed.Content)
	assert.Nil(t, feed.GroupID)
}

func TestFeedService_CreateFeed_IntoGroupAnnouncesBoth(t *testing.T) {
	service, feedRepo, groupRepo, userRepo, notifier := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	group := &entity.Group{ID: uuid.New(), Name: "morning crew"}
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, actor.ID).Return(true, nil)
	feedRepo.EXPECT().CreateFeed(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().FeedCreated(ctx, actor, mock.Anything).Return()
	notifier.EXPECT().GroupPosted(ctx, actor, group, mock.Anything).Return()

	feed, err := service.CreateFeed(ctx, actor.ID, &usecase.CreateFeedInput{
		Content: "group session done",
		GroupID: &group.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, feed.GroupID)
	assert.Equal(t, group.ID, *feed.GroupID)
}

func TestFeedService_CreateFeed_IntoGroupRequiresMembership(t *testing.T) {
	service, _, groupRepo, userRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	group := &entity.Group{ID: uuid.New()}
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, actor.ID).Return(false, nil)

	_, err := service.CreateFeed(ctx, actor.ID, &usecase.CreateFeedInput{GroupID: &group.ID})

	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)
}

func TestFeedService_LikeFeed_NotifiesAuthor(t *testing.T) {
	service, feedRepo, _, userRepo, notifier := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	feedRepo.EXPECT().FindFeedByID(ctx, feed.ID).Return(feed, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().CreateLike(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().FeedLiked(ctx, actor, feed).Return()

	err := service.LikeFeed(ctx, actor.ID, feed.ID)

	require.NoError(t, err)
}

func TestFeedService_LikeFeed_Twice(t *testing.T) {
	service, feedRepo, _, userRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	feedRepo.EXPECT().FindFeedByID(ctx, feed.ID).Return(feed, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().CreateLike(ctx, mock.Anything).Return(repository.ErrAlreadyLiked)

	err := service.LikeFeed(ctx, actor.ID, feed.ID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLiked)
}

func TestFeedService_CommentFeed_TopLevel(t *testing.T) {
	service, feedRepo, _, userRepo, notifier := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	feedRepo.EXPECT().FindFeedByID(ctx, feed.ID).Return(feed, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().CreateComment(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().FeedCommented(ctx, actor, feed, mock.Anything, uuid.Nil).Return()

	comment, err := service.CommentFeed(ctx, actor.ID, feed.ID, &usecase.CreateCommentInput{Content: "nice!"})

	require.NoError(t, err)
	assert.Equal(t, "nice!", comment.Content)
	assert.Nil(t, comment.ParentID)
}

func TestFeedService_CommentFeed_ReplyResolvesParentAuthor(t *testing.T) {
	service, feedRepo, _, userRepo, notifier := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	parent := &entity.FeedComment{ID: uuid.New(), FeedID: feed.ID, UserID: uuid.New()}
	feedRepo.EXPECT().FindFeedByID(ctx, feed.ID).Return(feed, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().FindCommentByID(ctx, parent.ID).Return(parent, nil)
	feedRepo.EXPECT().CreateComment(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().FeedCommented(ctx, actor, feed, mock.Anything, parent.UserID).Return()

	comment, err := service.CommentFeed(ctx, actor.ID, feed.ID, &usecase.CreateCommentInput{
		Content:  "same!",
		ParentID: &parent.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, comment.ParentID)
}

func TestFeedService_CommentFeed_ParentFromOtherPost(t *testing.T) {
	service, feedRepo, _, userRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	feed := &entity.Feed{ID: uuid.New(), UserID: uuid.New()}
	// Parent comment belongs to a different post.
	parent := &entity.FeedComment{ID: uuid.New(), FeedID: uuid.New(), UserID: uuid.New()}
	feedRepo.EXPECT().FindFeedByID(ctx, feed.ID).Return(feed, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	feedRepo.EXPECT().FindCommentByID(ctx, parent.ID).Return(parent, nil)

	_, err := service.CommentFeed(ctx, actor.ID, feed.ID, &usecase.CreateCommentInput{ParentID: &parent.ID})

	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestFeedService_UnlikeFeed_Idempotent(t *testing.T) {
	service, feedRepo, _, _, _ := createTestFeedService(t)

	ctx := context.Background()
	feedID := uuid.New()
	userID := uuid.New()
	feedRepo.EXPECT().DeleteLike(ctx, feedID, userID).Return(nil)

	err := service.UnlikeFeed(ctx, userID, feedID)

	require.NoError(t, err)
}
