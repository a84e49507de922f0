// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroupRole is a member's role within a group.
type GroupRole string

const (
	// GroupRoleOwner is the creator of the group.
	GroupRoleOwner GroupRole = "OWNER"
	// GroupRoleMember is a regular group member.
	GroupRoleMember GroupRole = "MEMBER"
)

// Group is a workout community users can join and post into.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupMember is the membership record linking a user to a group.
type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     GroupRole `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
