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

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup persists a new group.
func (repo *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindGroupByID retrieves a group by its unique ID.
func (repo *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by ID")
	}

	return toGroupDomain(&groupM), nil
}

// AddMember adds a membership record and increments the member count.
func (repo *groupRepository) AddMember(ctx context.Context, member *entity.GroupMember) error {
	memberM := &model.GroupMemberModel{
		GroupID: member.GroupID,
		UserID:  member.UserID,
		Role:    string(member.Role),
	}

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyMember
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", member.GroupID).
		UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to update member count")
	}

	member.JoinedAt = memberM.JoinedAt

	return nil
}

// IsMember reports whether the user belongs to the group.
func (repo *groupRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check group membership")
	}

	return count > 0, nil
}

// ListMembers returns the group's members.
func (repo *groupRepository) ListMembers(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.GroupMember, error) {
	var memberModels []*model.GroupMemberModel

	if err := repo.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group members")
	}

	members := make([]*entity.GroupMember, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, &entity.GroupMember{
			GroupID:  memberM.GroupID,
			UserID:   memberM.UserID,
			Role:     entity.GroupRole(memberM.Role),
			JoinedAt: memberM.JoinedAt,
		})
	}

	return members, nil
}

// ListGroupsByUser returns the groups the user belongs to.
func (repo *groupRepository) ListGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("group_members.joined_at DESC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list groups by user")
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		MemberCount: data.MemberCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		MemberCount: data.MemberCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
