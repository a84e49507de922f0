package impl

import (
	"context"
	"testing"
	"time"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	mockRepo "sharefit/internal/mocks/repository"
	mockSvc "sharefit/internal/mocks/service"
	mockUC "sharefit/internal/mocks/usecase"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockFollowRepository,
	*mockRepo.MockRefreshTokenRepository,
	*mockRepo.MockTransactionManager,
	*mockSvc.MockTokenService,
	*mockSvc.MockPasswordHasher,
	*mockUC.MockNotifier,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenService := mockSvc.NewMockTokenService(t)
	passwordHasher := mockSvc.NewMockPasswordHasher(t)
	notifier := mockUC.NewMockNotifier(t)

	service := NewUserService(
		userRepo, followRepo, refreshTokenRepo, txManager,
		tokenService, passwordHasher, notifier,
	)

	return service, userRepo, followRepo, refreshTokenRepo, txManager, tokenService, passwordHasher, notifier
}

func TestUserService_Register_Success(t *testing.T) {
	service, userRepo, _, _, _, _, passwordHasher, _ := createTestUserService(t)

	ctx := context.Background()
	passwordHasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:       "minsu@example.com",
		Password:    "secret123",
		DisplayName: "minsu",
	})

	require.NoError(t, err)
	assert.Equal(t, "minsu@example.com", user.Email)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, userRepo, _, _, _, _, passwordHasher, _ := createTestUserService(t)

	ctx := context.Background()
	passwordHasher.EXPECT().Hash(mock.Anything).Return("$2a$10$hash", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, &usecase.RegisterInput{Email: "taken@example.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	service, userRepo, _, refreshTokenRepo, _, tokenService, passwordHasher, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	userRepo.EXPECT().FindUserByEmail(ctx, "minsu@example.com").
		Return(&entity.User{ID: userID, Email: "minsu@example.com", PasswordHash: "$2a$10$hash"}, nil)
	passwordHasher.EXPECT().Compare("$2a$10$hash", "secret123").Return(nil)
	tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	var stored *entity.RefreshToken
	refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			stored = token
		}).
		Return(nil)

	user, pair, err := service.Login(ctx, &usecase.LoginInput{Email: "minsu@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	require.NotNil(t, stored)
	// Only the digest is persisted.
	assert.NotEqual(t, "refresh", stored.TokenHash)
	assert.Equal(t, hashToken("refresh"), stored.TokenHash)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, userRepo, _, _, _, _, passwordHasher, _ := createTestUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByEmail(ctx, mock.Anything).
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$hash"}, nil)
	passwordHasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(assert.AnError)

	_, _, err := service.Login(ctx, &usecase.LoginInput{Email: "minsu@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _, _, _, _, _ := createTestUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, _, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshTokens_RotatesWithinTransaction(t *testing.T) {
	service, _, _, _, txManager, tokenService, _, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashToken("old-refresh")

	tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenRepo.EXPECT().FindRefreshToken(ctx, oldHash).
		Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash}, nil)
	tokenRepo.EXPECT().DeleteRefreshToken(ctx, oldHash).Return(nil)
	tokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	pair, err := service.RefreshTokens(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestUserService_RefreshTokens_UnknownToken(t *testing.T) {
	service, _, _, _, txManager, _, _, _ := createTestUserService(t)

	ctx := context.Background()

	tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenRepo.EXPECT().FindRefreshToken(ctx, mock.Anything).
		Return(nil, repository.ErrRefreshTokenNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := service.RefreshTokens(ctx, "forged")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_ClearsSessionAndPushToken(t *testing.T) {
	service, userRepo, _, refreshTokenRepo, _, _, _, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, hashToken("refresh")).Return(nil)
	userRepo.EXPECT().ClearPushToken(ctx, userID).Return(nil)

	err := service.Logout(ctx, userID, "refresh")

	require.NoError(t, err)
}

func TestUserService_Follow_NotifiesFollowee(t *testing.T) {
	service, userRepo, followRepo, _, _, _, _, notifier := createTestUserService(t)

	ctx := context.Background()
	follower := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	followeeID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, follower.ID).Return(follower, nil)
	followRepo.EXPECT().CreateFollow(ctx, follower.ID, followeeID).Return(nil)
	notifier.EXPECT().Followed(ctx, follower, followeeID).Return()

	err := service.Follow(ctx, follower.ID, followeeID)

	require.NoError(t, err)
}

func TestUserService_Follow_Self(t *testing.T) {
	service, _, _, _, _, _, _, _ := createTestUserService(t)

	id := uuid.New()
	err := service.Follow(context.Background(), id, id)

	assert.ErrorIs(t, err, domainerrors.ErrCannotFollowSelf)
}

func TestUserService_Follow_AlreadyFollowing(t *testing.T) {
	service, userRepo, followRepo, _, _, _, _, _ := createTestUserService(t)

	ctx := context.Background()
	follower := &entity.User{ID: uuid.New(), DisplayName: "minsu"}
	followeeID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, follower.ID).Return(follower, nil)
	followRepo.EXPECT().CreateFollow(ctx, follower.ID, followeeID).Return(repository.ErrAlreadyFollowing)

	err := service.Follow(ctx, follower.ID, followeeID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyFollowing)
}

func TestUserService_RegisterPushToken(t *testing.T) {
	service, userRepo, _, _, _, _, _, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	userRepo.EXPECT().UpdatePushToken(ctx, userID, "new-device-token").Return(nil)

	err := service.RegisterPushToken(ctx, userID, "new-device-token")

	require.NoError(t, err)
}
