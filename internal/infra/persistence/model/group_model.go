package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	MemberCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Members []GroupMemberModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// GroupMemberModel mirrors the 'group_members' table. Role is one of OWNER or MEMBER.
type GroupMemberModel struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role     string    `gorm:"type:varchar(20);not null;default:'MEMBER'"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (GroupMemberModel) TableName() string {
	return "group_members"
}
