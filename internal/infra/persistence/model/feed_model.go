package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedModel mirrors the 'feeds' table. WorkoutID and GroupID are optional references.
type FeedModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Content      string     `gorm:"type:text;not null"`
	ImageURL     string     `gorm:"type:varchar(512)"`
	WorkoutID    *uuid.UUID `gorm:"type:uuid"`
	GroupID      *uuid.UUID `gorm:"type:uuid;index"`
	LikeCount    int        `gorm:"not null;default:0"`
	CommentCount int        `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Comments []FeedCommentModel `gorm:"foreignKey:FeedID"`
}

// TableName explicitly sets the table name for GORM.
func (FeedModel) TableName() string {
	return "feeds"
}

// FeedLikeModel mirrors the 'feed_likes' table. The composite key prevents double likes.
type FeedLikeModel struct {
	FeedID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedLikeModel) TableName() string {
	return "feed_likes"
}

// FeedCommentModel mirrors the 'feed_comments' table. ParentID is set for replies.
type FeedCommentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FeedID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid"`
	Content   string     `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedCommentModel) TableName() string {
	return "feed_comments"
}
