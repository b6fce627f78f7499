package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComfortPost is an entry on the community comfort wall.
type ComfortPost struct {
	PostID      uint           `gorm:"primaryKey;autoIncrement;column:post_id" json:"post_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	IsAnonymous bool           `gorm:"default:false" json:"is_anonymous"`
	LikeCount   int            `gorm:"default:0" json:"like_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ComfortLike tracks who liked a comfort wall post.
type ComfortLike struct {
	LikeID    uint      `gorm:"primaryKey;autoIncrement;column:like_id" json:"like_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ComfortMessage is a short supportive reply on a comfort wall post.
type ComfortMessage struct {
	MessageID   uint           `gorm:"primaryKey;autoIncrement;column:message_id" json:"message_id"`
	PostID      uint           `gorm:"not null;index" json:"post_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null" json:"-"`
	Content     string         `gorm:"size:500;not null" json:"content"`
	IsAnonymous bool           `gorm:"default:false" json:"is_anonymous"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
