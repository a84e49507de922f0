package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	DisplayName     string    `gorm:"type:varchar(100);not null"`
	Bio             string    `gorm:"type:text"`
	ProfileImageURL string    `gorm:"type:varchar(512)"`
	PushToken       string    `gorm:"type:varchar(512)"`
	IsActive        bool      `gorm:"not null;default:true"`
	FollowerCount   int       `gorm:"not null;default:0"`
	FollowingCount  int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FollowModel mirrors the 'follows' table. The composite key prevents duplicate edges.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
