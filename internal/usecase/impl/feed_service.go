package impl

import (
	"context"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/errors"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

type feedService struct {
	feedRepo  repository.FeedRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	notifier  usecase.Notifier
}

// NewFeedService creates a new feed service instance
func NewFeedService(
	feedRepo repository.FeedRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	notifier usecase.Notifier,
) usecase.FeedUsecase {
	return &feedService{
		feedRepo:  feedRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// CreateFeed publishes a post. Posting into a group requires membership and
// additionally announces the post on the group's live channel.
func (s *feedService) CreateFeed(ctx context.Context, userID uuid.UUID, input *usecase.CreateFeedInput) (*entity.Feed, error) {
	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var group *entity.Group
	if input.GroupID != nil {
		group, err = s.findGroup(ctx, *input.GroupID)
		if err != nil {
			return nil, err
		}

		member, err := s.groupRepo.IsMember(ctx, group.ID, userID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check membership")
		}
		if !member {
			return nil, domainerrors.ErrNotGroupMember
		}
	}

	feed := &entity.Feed{
		UserID:    userID,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		WorkoutID: input.WorkoutID,
		GroupID:   input.GroupID,
	}
	if err := s.feedRepo.CreateFeed(ctx, feed); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create feed")
	}

	s.notifier.FeedCreated(ctx, actor, feed)
	if group != nil {
		s.notifier.GroupPosted(ctx, actor, group, feed)
	}

	return feed, nil
}

// GetFeed returns one post.
func (s *feedService) GetFeed(ctx context.Context, feedID uuid.UUID) (*entity.Feed, error) {
	return s.findFeed(ctx, feedID)
}

// ListFeeds returns the public timeline, newest first.
func (s *feedService) ListFeeds(ctx context.Context, limit, offset int) ([]*entity.Feed, error) {
	feeds, err := s.feedRepo.ListFeeds(ctx, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list feeds")
	}

	return feeds, nil
}

// LikeFeed adds the caller's like and notifies the post author.
func (s *feedService) LikeFeed(ctx context.Context, userID, feedID uuid.UUID) error {
	feed, err := s.findFeed(ctx, feedID)
	if err != nil {
		return err
	}

	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	like := &entity.FeedLike{FeedID: feedID, UserID: userID}
	if err := s.feedRepo.CreateLike(ctx, like); err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return domainerrors.ErrAlreadyLiked
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	s.notifier.FeedLiked(ctx, actor, feed)

	return nil
}

// UnlikeFeed removes the caller's like. Unliking a post never liked is a no-op.
func (s *feedService) UnlikeFeed(ctx context.Context, userID, feedID uuid.UUID) error {
	if err := s.feedRepo.DeleteLike(ctx, feedID, userID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}

	return nil
}

// CommentFeed adds a comment, or a reply when input carries a parent ID.
// A reply notifies the parent comment's author instead of the post author.
func (s *feedService) CommentFeed(ctx context.Context, userID, feedID uuid.UUID, input *usecase.CreateCommentInput) (*entity.FeedComment, error) {
	feed, err := s.findFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	parentAuthorID := uuid.Nil
	if input.ParentID != nil {
		parent, err := s.feedRepo.FindCommentByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return nil, domainerrors.ErrCommentNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find parent comment")
		}
		if parent.FeedID != feedID {
			return nil, domainerrors.ErrCommentNotFound
		}
		parentAuthorID = parent.UserID
	}

	comment := &entity.FeedComment{
		FeedID:   feedID,
		UserID:   userID,
		ParentID: input.ParentID,
		Content:  input.Content,
	}
	if err := s.feedRepo.CreateComment(ctx, comment); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	s.notifier.FeedCommented(ctx, actor, feed, comment, parentAuthorID)

	return comment, nil
}

// ListComments returns a post's comments, oldest first.
func (s *feedService) ListComments(ctx context.Context, feedID uuid.UUID, limit, offset int) ([]*entity.FeedComment, error) {
	comments, err := s.feedRepo.ListComments(ctx, feedID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	return comments, nil
}

func (s *feedService) findFeed(ctx context.Context, feedID uuid.UUID) (*entity.Feed, error) {
	feed, err := s.feedRepo.FindFeedByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedNotFound) {
			return nil, domainerrors.ErrFeedNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find feed")
	}

	return feed, nil
}

func (s *feedService) findGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group")
	}

	return group, nil
}

func (s *feedService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}
