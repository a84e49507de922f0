package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sharefit/internal/domain/entity"
	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	mockRepo "sharefit/internal/mocks/repository"
	mockSvc "sharefit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestPushDeliveryService(t *testing.T) (
	service.PushDeliverer,
	*mockSvc.MockPushGateway,
	*mockRepo.MockUserRepository,
) {
	gateway := mockSvc.NewMockPushGateway(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	deliverer := NewPushDeliveryService(gateway, userRepo, logger)

	return deliverer, gateway, userRepo
}

func TestPushDeliveryService_Deliver_ResolvesTokenFromUser(t *testing.T) {
	deliverer, gateway, userRepo := createTestPushDeliveryService(t)

	userID := uuid.New()
	userRepo.EXPECT().FindUserByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, PushToken: "device-token-1"}, nil)

	var sentData map[string]string
	gateway.EXPECT().
		Send(mock.Anything, "device-token-1", "응원 도착!", "minsu: go!", mock.Anything, true).
		Run(func(_ context.Context, _ string, _ string, _ string, data map[string]string, _ bool) {
			sentData = data
		}).
		Return(nil)

	deliverer.Deliver(context.Background(), &service.PushRequest{
		UserID:       userID,
		Title:        "응원 도착!",
		Body:         "minsu: go!",
		Kind:         entity.EventKindCheer,
		HighPriority: true,
	})

	assert.Equal(t, string(entity.EventKindCheer), sentData["kind"])
	assert.Equal(t, userID.String(), sentData["userId"])
}

func TestPushDeliveryService_Deliver_UserWithoutTokenIsSkipped(t *testing.T) {
	deliverer, _, userRepo := createTestPushDeliveryService(t)

	userID := uuid.New()
	userRepo.EXPECT().FindUserByID(mock.Anything, userID).
		Return(&entity.User{ID: userID}, nil)

	// The gateway mock would fail the test if Send were called.
	deliverer.Deliver(context.Background(), &service.PushRequest{
		UserID: userID,
		Title:  "좋아요",
	})
}

func TestPushDeliveryService_Deliver_UnknownUserIsSkipped(t *testing.T) {
	deliverer, _, userRepo := createTestPushDeliveryService(t)

	userID := uuid.New()
	userRepo.EXPECT().FindUserByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	deliverer.Deliver(context.Background(), &service.PushRequest{
		UserID: userID,
		Title:  "좋아요",
	})
}

func TestPushDeliveryService_Deliver_UnregisteredTokenIsPruned(t *testing.T) {
	deliverer, gateway, userRepo := createTestPushDeliveryService(t)

	userID := uuid.New()
	gateway.EXPECT().
		Send(mock.Anything, "stale-token", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrUnregisteredToken, "fcm send failed"))
	userRepo.EXPECT().ClearPushToken(mock.Anything, userID).Return(nil)

	deliverer.Deliver(context.Background(), &service.PushRequest{
		UserID:      userID,
		DeviceToken: "stale-token",
		Title:       "새 팔로워",
	})
}

func TestPushDeliveryService_Deliver_TransientErrorIsSwallowed(t *testing.T) {
	deliverer, gateway, _ := createTestPushDeliveryService(t)

	gateway.EXPECT().
		Send(mock.Anything, "token", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("deadline exceeded"))

	// No ClearPushToken, no panic; the push is simply lost.
	deliverer.Deliver(context.Background(), &service.PushRequest{
		UserID:      uuid.New(),
		DeviceToken: "token",
		Title:       "새 댓글",
	})
}

func TestPushDeliveryService_DeliverBatch_GroupsIdenticalNotifications(t *testing.T) {
	deliverer, gateway, userRepo := createTestPushDeliveryService(t)

	staleUser := uuid.New()
	reqs := []*service.PushRequest{
		{UserID: uuid.New(), DeviceToken: "token-a", Title: "운동 완료", Body: "minsu finished", Kind: entity.EventKindWorkoutComplete},
		{UserID: staleUser, DeviceToken: "token-b", Title: "운동 완료", Body: "minsu finished", Kind: entity.EventKindWorkoutComplete},
	}

	gateway.EXPECT().
		SendEach(mock.Anything, []string{"token-a", "token-b"}, "운동 완료", "minsu finished", mock.Anything, false).
		Return(1, 1, []string{"token-b"}, nil)
	userRepo.EXPECT().ClearPushToken(mock.Anything, staleUser).Return(nil)

	deliverer.DeliverBatch(context.Background(), reqs)
}

func TestPushDeliveryService_DeliverBatch_SingleRequestUsesSend(t *testing.T) {
	deliverer, gateway, _ := createTestPushDeliveryService(t)

	gateway.EXPECT().
		Send(mock.Anything, "token-a", "좋아요", mock.Anything, mock.Anything, false).
		Return(nil)

	deliverer.DeliverBatch(context.Background(), []*service.PushRequest{
		{UserID: uuid.New(), DeviceToken: "token-a", Title: "좋아요", Body: "minsu liked your post"},
	})
}
