package usecase

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput carries a new group.
type CreateGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GroupUsecase defines the interface for workout group use cases
type GroupUsecase interface {
	// CreateGroup creates a group with the caller as owner.
	CreateGroup(ctx context.Context, ownerID uuid.UUID, input *CreateGroupInput) (*entity.Group, error)

	// GetGroup returns one group.
	GetGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, error)

	// JoinGroup adds the caller as a member.
	JoinGroup(ctx context.Context, userID, groupID uuid.UUID) error

	// JoinGroupByInvite parses an invite QR payload and joins its group.
	JoinGroupByInvite(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Group, error)

	// GenerateInviteQR returns a PNG QR code inviting into the group.
	// Only members can generate invites.
	GenerateInviteQR(ctx context.Context, userID, groupID uuid.UUID) ([]byte, error)

	// ListMembers returns the group's members.
	ListMembers(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.GroupMember, error)

	// ListGroupFeeds returns posts shared into the group, members only.
	ListGroupFeeds(ctx context.Context, userID, groupID uuid.UUID, limit, offset int) ([]*entity.Feed, error)

	// ListMyGroups returns the groups the caller belongs to.
	ListMyGroups(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)
}
