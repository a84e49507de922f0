package impl

import (
	"context"
	"testing"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	mockRepo "sharefit/internal/mocks/repository"
	mockSvc "sharefit/internal/mocks/service"
	mockUC "sharefit/internal/mocks/usecase"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGroupService(t *testing.T) (
	usecase.GroupUsecase,
	*mockRepo.MockGroupRepository,
	*mockRepo.MockFeedRepository,
	*mockRepo.MockUserRepository,
	*mockRepo.MockTransactionManager,
	*mockSvc.MockQRCodeService,
	*mockUC.MockNotifier,
) {
	groupRepo := mockRepo.NewMockGroupRepository(t)
	feedRepo := mockRepo.NewMockFeedRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	notifier := mockUC.NewMockNotifier(t)

	service := NewGroupService(groupRepo, feedRepo, userRepo, txManager, qrcodeService, notifier)

	return service, groupRepo, feedRepo, userRepo, txManager, qrcodeService, notifier
}

func TestGroupService_CreateGroup_EnrollsOwner(t *testing.T) {
	service, _, _, _, txManager, _, _ := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	txGroupRepo := mockRepo.NewMockGroupRepository(t)
	txGroupRepo.EXPECT().CreateGroup(ctx, mock.Anything).Return(nil)

	var member *entity.GroupMember
	txGroupRepo.EXPECT().AddMember(ctx, mock.Anything).
		Run(func(_ context.Context, m *entity.GroupMember) {
			member = m
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewGroupRepository().Return(txGroupRepo)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	group, err := service.CreateGroup(ctx, ownerID, &usecase.CreateGroupInput{Name: "morning crew"})

	require.NoError(t, err)
	assert.Equal(t, ownerID, group.OwnerID)
	require.NotNil(t, member)
	assert.Equal(t, entity.GroupRoleOwner, member.Role)
	assert.Equal(t, ownerID, member.UserID)
}

func TestGroupService_JoinGroup_Announces(t *testing.T) {
	service, groupRepo, _, userRepo, _, _, notifier := createTestGroupService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	group := &entity.Group{ID: uuid.New(), Name: "morning crew"}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	groupRepo.EXPECT().AddMember(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().GroupJoined(ctx, actor, group).Return()

	err := service.JoinGroup(ctx, actor.ID, group.ID)

	require.NoError(t, err)
}

func TestGroupService_JoinGroup_Twice(t *testing.T) {
	service, groupRepo, _, userRepo, _, _, _ := createTestGroupService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	group := &entity.Group{ID: uuid.New()}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	groupRepo.EXPECT().AddMember(ctx, mock.Anything).Return(repository.ErrAlreadyMember)

	err := service.JoinGroup(ctx, actor.ID, group.ID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyGroupMember)
}

func TestGroupService_JoinGroupByInvite_Success(t *testing.T) {
	service, groupRepo, _, userRepo, _, qrcodeService, notifier := createTestGroupService(t)

	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	group := &entity.Group{ID: uuid.New(), Name: "morning crew"}
	qrcodeService.EXPECT().ParseGroupInviteQR("qr-payload").Return(group.ID, nil)
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	userRepo.EXPECT().FindUserByID(ctx, actor.ID).Return(actor, nil)
	groupRepo.EXPECT().AddMember(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().GroupJoined(ctx, actor, group).Return()

	joined, err := service.JoinGroupByInvite(ctx, actor.ID, "qr-payload")

	require.NoError(t, err)
	assert.Equal(t, group.ID, joined.ID)
}

func TestGroupService_JoinGroupByInvite_BadPayload(t *testing.T) {
	service, _, _, _, _, qrcodeService, _ := createTestGroupService(t)

	qrcodeService.EXPECT().ParseGroupInviteQR("garbage").Return(uuid.Nil, errors.New("invalid QR code type"))

	_, err := service.JoinGroupByInvite(context.Background(), uuid.New(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGroupService_GenerateInviteQR_MembersOnly(t *testing.T) {
	service, groupRepo, _, _, _, _, _ := createTestGroupService(t)

	ctx := context.Background()
	userID := uuid.New()
	group := &entity.Group{ID: uuid.New()}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, userID).Return(false, nil)

	_, err := service.GenerateInviteQR(ctx, userID, group.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)
}

func TestGroupService_GenerateInviteQR_Success(t *testing.T) {
	service, groupRepo, _, _, _, qrcodeService, _ := createTestGroupService(t)

	ctx := context.Background()
	userID := uuid.New()
	group := &entity.Group{ID: uuid.New()}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, userID).Return(true, nil)
	qrcodeService.EXPECT().GenerateGroupInviteQR(group.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.GenerateInviteQR(ctx, userID, group.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGroupService_ListGroupFeeds_MembersOnly(t *testing.T) {
	service, groupRepo, _, _, _, _, _ := createTestGroupService(t)

	ctx := context.Background()
	userID := uuid.New()
	group := &entity.Group{ID: uuid.New()}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, userID).Return(false, nil)

	_, err := service.ListGroupFeeds(ctx, userID, group.ID, 20, 0)

	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)
}

func TestGroupService_ListGroupFeeds_Success(t *testing.T) {
	service, groupRepo, feedRepo, _, _, _, _ := createTestGroupService(t)

	ctx := context.Background()
	userID := uuid.New()
	group := &entity.Group{ID: uuid.New()}
	groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	groupRepo.EXPECT().IsMember(ctx, group.ID, userID).Return(true, nil)
	feedRepo.EXPECT().ListFeedsByGroup(ctx, group.ID, 20, 0).
		Return([]*entity.Feed{{ID: uuid.New(), GroupID: &group.ID}}, nil)

	feeds, err := service.ListGroupFeeds(ctx, userID, group.ID, 20, 0)

	require.NoError(t, err)
	assert.Len(t, feeds, 1)
}
