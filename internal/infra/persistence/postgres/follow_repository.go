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

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// CreateFollow adds a follower -> followee edge and bumps both denormalized counters.
func (repo *followRepository) CreateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	followM := &model.FollowModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyFollowing
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	if err := repo.adjustFollowCounts(ctx, followerID, followeeID, 1); err != nil {
		return err
	}

	return nil
}

// DeleteFollow removes a follower -> followee edge. Idempotent.
func (repo *followRepository) DeleteFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete follow")
	}

	if result.RowsAffected == 0 {
		return nil
	}

	return repo.adjustFollowCounts(ctx, followerID, followeeID, -1)
}

// IsFollowing reports whether the edge exists.
func (repo *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow edge")
	}

	return count > 0, nil
}

// ListFollowerIDs returns the IDs of everyone following the user.
func (repo *followRepository) ListFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list follower IDs")
	}

	return ids, nil
}

// ListFollowers returns follower users with pagination.
func (repo *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// ListFollowing returns followed users with pagination.
func (repo *followRepository) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// adjustFollowCounts keeps the denormalized follower/following counters in step
// with the follows table.
func (repo *followRepository) adjustFollowCounts(ctx context.Context, followerID, followeeID uuid.UUID, delta int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", followerID).
		UpdateColumn("following_count", gorm.Expr("following_count + ?", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to update following count")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", followeeID).
		UpdateColumn("follower_count", gorm.Expr("follower_count + ?", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to update follower count")
	}

	return nil
}
