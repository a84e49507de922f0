package repository

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrAlreadyMember is returned when a user joins a group twice.
	ErrAlreadyMember = errors.New("already a group member")
)

// GroupRepository defines the interface for group and membership persistence.
type GroupRepository interface {
	// CreateGroup persists a new group.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group by its unique ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// AddMember adds a membership record and increments the member count.
	AddMember(ctx context.Context, member *entity.GroupMember) error

	// IsMember reports whether the user belongs to the group.
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// ListMembers returns the group's members.
	ListMembers(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*entity.GroupMember, error)

	// ListGroupsByUser returns the groups the user belongs to.
	ListGroupsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)
}
