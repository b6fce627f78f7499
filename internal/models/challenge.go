package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge is a shared emotion-tracking goal over a date range.
type Challenge struct {
	ChallengeID      uint           `gorm:"primaryKey;autoIncrement;column:challenge_id" json:"challenge_id"`
	CreatorID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title            string         `gorm:"size:100;not null" json:"title"`
	Description      *string        `gorm:"type:text" json:"description"`
	StartDate        time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate          time.Time      `gorm:"type:date;not null" json:"end_date"`
	// No default tag: GORM would skip a false value on insert and the
	// column default would silently flip private challenges to public.
	IsPublic         bool           `gorm:"not null" json:"is_public"`
	MaxParticipants  *int           `json:"max_participants"`
	ParticipantCount int            `gorm:"not null;default:0" json:"participant_count"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Creator User `gorm:"foreignKey:CreatorID" json:"-"`
}

// ChallengeParticipant joins users to the challenges they take part in.
type ChallengeParticipant struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChallengeID uint      `gorm:"not null;uniqueIndex:idx_challenge_user" json:"challenge_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_user" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
