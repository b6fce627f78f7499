package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Emotion is one entry of the fixed emotion catalog.
type Emotion struct {
	EmotionID uint      `gorm:"primaryKey;autoIncrement;column:emotion_id" json:"emotion_id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Icon      string    `gorm:"size:10;not null" json:"icon"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// EmotionLog is one emotion a user selected on one calendar day. A day with
// several selected emotions produces several rows sharing the same log_date.
type EmotionLog struct {
	LogID     uint           `gorm:"primaryKey;autoIncrement;column:log_id" json:"log_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	EmotionID uint           `gorm:"not null;index" json:"emotion_id"`
	LogDate   time.Time      `gorm:"type:date;not null;index" json:"log_date"`
	Note      *string        `gorm:"size:200" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Emotion *Emotion `gorm:"foreignKey:EmotionID;references:EmotionID" json:"emotion,omitempty"`
}
