package postgres

import (
	"context"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedRepository implements the repository.FeedRepository interface.
type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository is the constructor for feedRepository.
func NewFeedRepository(db *gorm.DB) repository.FeedRepository {
	return &feedRepository{
		db: db,
	}
}

// CreateFeed persists a new feed post.
func (repo *feedRepository) CreateFeed(ctx context.Context, feed *entity.Feed) error {
	feedM := fromFeedDomain(feed)

	if err := repo.db.WithContext(ctx).Create(feedM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feed")
	}

	feed.ID = feedM.ID
	feed.CreatedAt = feedM.CreatedAt
	feed.UpdatedAt = feedM.UpdatedAt

	return nil
}

// FindFeedByID retrieves a feed post by its unique ID.
func (repo *feedRepository) FindFeedByID(ctx context.Context, id uuid.UUID) (*entity.Feed, error) {
	var feedM model.FeedModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedNotFound
		}

		return nil, errors.Wrap(err, "failed to find feed by ID")
	}

	return toFeedDomain(&feedM), nil
}

// ListFeeds returns the public timeline, newest first.
func (repo *feedRepository) ListFeeds(ctx context.Context, limit, offset int) ([]*entity.Feed, error) {
	var feedModels []*model.FeedModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&feedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feeds")
	}

	return toFeedDomainSlice(feedModels), nil
}

// ListFeedsByGroup returns posts shared into a group, newest first.
func (repo *feedRepository) ListFeedsByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.Feed, error) {
	var feedModels []*model.FeedModel

	if err := repo.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&feedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feeds by group")
	}

	return toFeedDomainSlice(feedModels), nil
}

// CreateLike adds a like and increments the post's like count.
func (repo *feedRepository) CreateLike(ctx context.Context, like *entity.FeedLike) error {
	likeM := &model.FeedLikeModel{
		FeedID: like.FeedID,
		UserID: like.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyLiked
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFeedNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedModel{}).
		Where("id = ?", like.FeedID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to update like count")
	}

	like.CreatedAt = likeM.CreatedAt

	return nil
}

// DeleteLike removes a like and decrements the post's like count. Idempotent.
func (repo *feedRepository) DeleteLike(ctx context.Context, feedID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("feed_id = ? AND user_id = ?", feedID, userID).
		Delete(&model.FeedLikeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete like")
	}

	if result.RowsAffected == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedModel{}).
		Where("id = ?", feedID).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
		return errors.Wrap(err, "failed to update like count")
	}

	return nil
}

// CreateComment persists a comment and increments the post's comment count.
func (repo *feedRepository) CreateComment(ctx context.Context, comment *entity.FeedComment) error {
	commentM := &model.FeedCommentModel{
		ID:       comment.ID,
		FeedID:   comment.FeedID,
		UserID:   comment.UserID,
		ParentID: comment.ParentID,
		Content:  comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFeedNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedModel{}).
		Where("id = ?", comment.FeedID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to update comment count")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindCommentByID retrieves a comment by its unique ID.
func (repo *feedRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.FeedComment, error) {
	var commentM model.FeedCommentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// ListComments returns a post's comments, oldest first.
func (repo *feedRepository) ListComments(ctx context.Context, feedID uuid.UUID, limit, offset int) ([]*entity.FeedComment, error) {
	var commentModels []*model.FeedCommentModel

	if err := repo.db.WithContext(ctx).
		Where("feed_id = ?", feedID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.FeedComment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// --- Mapper Functions ---

// toFeedDomain converts a GORM FeedModel to a domain Feed entity.
func toFeedDomain(data *model.FeedModel) *entity.Feed {
	if data == nil {
		return nil
	}

	return &entity.Feed{
		ID:           data.ID,
		UserID:       data.UserID,
		Content:      data.Content,
		ImageURL:     data.ImageURL,
		WorkoutID:    data.WorkoutID,
		GroupID:      data.GroupID,
		LikeCount:    data.LikeCount,
		CommentCount: data.CommentCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toFeedDomainSlice(models []*model.FeedModel) []*entity.Feed {
	feeds := make([]*entity.Feed, 0, len(models))
	for _, feedM := range models {
		feeds = append(feeds, toFeedDomain(feedM))
	}

	return feeds
}

// fromFeedDomain converts a domain Feed entity to a GORM FeedModel.
func fromFeedDomain(data *entity.Feed) *model.FeedModel {
	if data == nil {
		return nil
	}

	return &model.FeedModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Content:      data.Content,
		ImageURL:     data.ImageURL,
		WorkoutID:    data.WorkoutID,
		GroupID:      data.GroupID,
		LikeCount:    data.LikeCount,
		CommentCount: data.CommentCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toCommentDomain converts a GORM FeedCommentModel to a domain FeedComment entity.
func toCommentDomain(data *model.FeedCommentModel) *entity.FeedComment {
	if data == nil {
		return nil
	}

	return &entity.FeedComment{
		ID:        data.ID,
		FeedID:    data.FeedID,
		UserID:    data.UserID,
		ParentID:  data.ParentID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
