package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/soyeonjeong/maumlog/internal/models"
	"gorm.io/gorm"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrChallengeFull     = errors.New("challenge is full")
	ErrAlreadyJoined     = errors.New("already joined this challenge")
	ErrInvalidDateRange  = errors.New("end_date must be after start_date")
)

// ChallengeService handles shared emotion-tracking challenges.
type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

// Create stores a challenge and joins the creator as its first participant.
func (s *ChallengeService) Create(creatorID uuid.UUID, title string, description *string, start, end time.Time, isPublic bool, maxParticipants *int) (*models.Challenge, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	challenge := &models.Challenge{
		CreatorID:        creatorID,
		Title:            title,
		Description:      description,
		StartDate:        start,
		EndDate:          end,
		IsPublic:         isPublic,
		MaxParticipants:  maxParticipants,
		ParticipantCount: 1,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(challenge).Error; err != nil {
			return err
		}
		participant := models.ChallengeParticipant{
			ChallengeID: challenge.ChallengeID,
			UserID:      creatorID,
		}
		return tx.Create(&participant).Error
	})
	if err != nil {
		return nil, err
	}
	return challenge, nil
}

// ListPublic returns a page of public challenges, newest first.
func (s *ChallengeService) ListPublic(page, limit int) ([]models.Challenge, int64, error) {
	var total int64
	if err := s.db.Model(&models.Challenge{}).Where("is_public = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var challenges []models.Challenge
	err := s.db.Where("is_public = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&challenges).Error
	return challenges, total, err
}

// Join adds the user to a challenge, enforcing the participant cap and
// rejecting duplicate joins.
func (s *ChallengeService) Join(userID uuid.UUID, challengeID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.First(&challenge, "challenge_id = ?", challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}

		var existing models.ChallengeParticipant
		err := tx.Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&existing).Error
		if err == nil {
			return ErrAlreadyJoined
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if challenge.MaxParticipants != nil && challenge.ParticipantCount >= *challenge.MaxParticipants {
			return ErrChallengeFull
		}

		participant := models.ChallengeParticipant{ChallengeID: challengeID, UserID: userID}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
		return tx.Model(&challenge).
			Update("participant_count", gorm.Expr("participant_count + 1")).Error
	})
}
