package impl

import (
	"context"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	"sharefit/internal/errors"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

type groupService struct {
	groupRepo     repository.GroupRepository
	feedRepo      repository.FeedRepository
	userRepo      repository.UserRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	notifier      usecase.Notifier
}

// NewGroupService creates a new group service instance
func NewGroupService(
	groupRepo repository.GroupRepository,
	feedRepo repository.FeedRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	qrcodeService service.QRCodeService,
	notifier usecase.Notifier,
) usecase.GroupUsecase {
	return &groupService{
		groupRepo:     groupRepo,
		feedRepo:      feedRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		qrcodeService: qrcodeService,
		notifier:      notifier,
	}
}

// CreateGroup creates a group and enrolls the creator as owner in one
// transaction, so a group never exists without its owner membership.
func (s *groupService) CreateGroup(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGroupInput) (*entity.Group, error) {
	group := &entity.Group{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txGroupRepo := txRepoFactory.NewGroupRepository()

		if err := txGroupRepo.CreateGroup(ctx, group); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
		}

		member := &entity.GroupMember{
			GroupID: group.ID,
			UserID:  ownerID,
			Role:    entity.GroupRoleOwner,
		}
		if err := txGroupRepo.AddMember(ctx, member); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to add owner membership")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroup returns one group.
func (s *groupService) GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	return s.findGroup(ctx, groupID)
}

// JoinGroup adds the caller as a member and announces the join on the
// group's live channel.
func (s *groupService) JoinGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return err
	}

	actor, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	member := &entity.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    entity.GroupRoleMember,
	}
	if err := s.groupRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return domainerrors.ErrAlreadyGroupMember
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add member")
	}

	s.notifier.GroupJoined(ctx, actor, group)

	return nil
}

// JoinGroupByInvite parses an invite QR payload and joins its group.
func (s *groupService) JoinGroupByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Group, error) {
	groupID, err := s.qrcodeService.ParseGroupInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapCause(err, "invalid invite code")
	}

	if err := s.JoinGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	return s.findGroup(ctx, groupID)
}

// GenerateInviteQR returns a PNG QR code inviting into the group. Only
// members can generate invites.
func (s *groupService) GenerateInviteQR(ctx context.Context, userID, groupID uuid.UUID) ([]byte, error) {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, group.ID, userID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateGroupInviteQR(group.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR")
	}

	return png, nil
}

// ListMembers returns the group's members in join order.
func (s *groupService) ListMembers(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.GroupMember, error) {
	if _, err := s.findGroup(ctx, groupID); err != nil {
		return nil, err
	}

	members, err := s.groupRepo.ListMembers(ctx, groupID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list members")
	}

	return members, nil
}

// ListGroupFeeds returns posts shared into the group. Members only.
func (s *groupService) ListGroupFeeds(ctx context.Context, userID, groupID uuid.UUID, limit, offset int) ([]*entity.Feed, error) {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, group.ID, userID); err != nil {
		return nil, err
	}

	feeds, err := s.feedRepo.ListFeedsByGroup(ctx, groupID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list group feeds")
	}

	return feeds, nil
}

// ListMyGroups returns the groups the caller belongs to.
func (s *groupService) ListMyGroups(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	groups, err := s.groupRepo.ListGroupsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list groups")
	}

	return groups, nil
}

func (s *groupService) requireMembership(ctx context.Context, groupID, userID uuid.UUID) error {
	member, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check membership")
	}
	if !member {
		return domainerrors.ErrNotGroupMember
	}

	return nil
}

func (s *groupService) findGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group")
	}

	return group, nil
}

func (s *groupService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}
