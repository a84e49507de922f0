// Package impl provides the implementations of the use case interfaces.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"sharefit/internal/domain/entity"
	domainerrors "sharefit/internal/domain/errors"
	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	"sharefit/internal/errors"
	"sharefit/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo         repository.UserRepository
	followRepo       repository.FollowRepository
	refreshTokenRepo repository.RefreshTokenRepository
	txManager        repository.TransactionManager
	tokenService     service.TokenService
	passwordHasher   service.PasswordHasher
	notifier         usecase.Notifier
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	passwordHasher service.PasswordHasher,
	notifier usecase.Notifier,
) usecase.UserUsecase {
	return &userService{
		userRepo:         userRepo,
		followRepo:       followRepo,
		refreshTokenRepo: refreshTokenRepo,
		txManager:        txManager,
		tokenService:     tokenService,
		passwordHasher:   passwordHasher,
		notifier:         notifier,
	}
}

// Register creates a new account and returns the created user.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapCause(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapCause(err, "failed to create user")
	}

	return user, nil
}

// Login verifies credentials, issues a token pair and persists the session.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, *usecase.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// RefreshTokens rotates a refresh token into a fresh pair. Lookup, delete
// and re-issue run in one transaction, so a presented token is consumed
// exactly once even under concurrent refresh attempts.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	tokenHash := hashToken(refreshToken)

	var pair *usecase.TokenPair
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		tokenRepo := txRepoFactory.NewRefreshTokenRepository()

		stored, err := tokenRepo.FindRefreshToken(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to find refresh token")
		}

		if err := tokenRepo.DeleteRefreshToken(ctx, tokenHash); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to rotate refresh token")
		}

		accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		session := &entity.RefreshToken{
			UserID:    stored.UserID,
			TokenHash: hashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(s.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, session); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
		}

		pair = &usecase.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout deletes the session and clears the push token, so a signed-out
// device stops receiving notifications.
func (s *userService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteRefreshToken(ctx, hashToken(refreshToken)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	if err := s.userRepo.ClearPushToken(ctx, userID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear push token")
	}

	return nil
}

// GetProfile returns a user's public profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates the caller's profile fields.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = input.DisplayName
	user.Bio = input.Bio
	if input.ProfileImageURL != "" {
		user.ProfileImageURL = input.ProfileImageURL
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return user, nil
}

// RegisterPushToken stores the device push token, replacing any previous one.
func (s *userService) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update push token")
	}

	return nil
}

// Follow makes the caller follow another user and notifies the followee.
func (s *userService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return domainerrors.ErrCannotFollowSelf
	}

	follower, err := s.userRepo.FindUserByID(ctx, followerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find follower")
	}

	if err := s.followRepo.CreateFollow(ctx, followerID, followeeID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyFollowing):
			return domainerrors.ErrAlreadyFollowing
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
		}
	}

	s.notifier.Followed(ctx, follower, followeeID)

	return nil
}

// Unfollow removes a follow edge. Unfollowing someone not followed is a no-op.
func (s *userService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.followRepo.DeleteFollow(ctx, followerID, followeeID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow")
	}

	return nil
}

// ListFollowers returns the user's followers with pagination.
func (s *userService) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	users, err := s.followRepo.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list followers")
	}

	return users, nil
}

// ListFollowing returns the users the user follows with pagination.
func (s *userService) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	users, err := s.followRepo.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list following")
	}

	return users, nil
}

// issueTokens generates a token pair and stores the refresh token hash.
func (s *userService) issueTokens(ctx context.Context, userID uuid.UUID) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.tokenService.GetRefreshTokenDuration()),
	}
	if err := s.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// hashToken stores refresh tokens by digest so a database leak does not
// leak usable sessions.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
