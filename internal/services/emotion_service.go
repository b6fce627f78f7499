package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soyeonjeong/maumlog/internal/dto"
	"github.com/soyeonjeong/maumlog/internal/models"
	"github.com/soyeonjeong/maumlog/internal/stats"
	"gorm.io/gorm"
)

var (
	ErrNoEmotions    = errors.New("at least one emotion must be selected")
	ErrAlreadyLogged = errors.New("today's emotions are already recorded")
)

// EmotionService handles the emotion catalog, daily logs and statistics.
type EmotionService struct {
	db *gorm.DB
}

func NewEmotionService(db *gorm.DB) *EmotionService {
	return &EmotionService{db: db}
}

// DayStart truncates a time to midnight in its location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ListCatalog returns the emotion catalog sorted by name ascending.
func (s *EmotionService) ListCatalog() ([]models.Emotion, error) {
	var emotions []models.Emotion
	err := s.db.Order("name ASC").Find(&emotions).Error
	return emotions, err
}

// ListLogs returns the user's emotion logs, newest first, with the emotion
// name and icon attached to each row.
func (s *EmotionService) ListLogs(userID uuid.UUID, limit, offset int) ([]dto.EmotionLogItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.EmotionLog{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.EmotionLog
	err := s.db.Preload("Emotion").
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.EmotionLogItem, 0, len(logs))
	for _, log := range logs {
		item := dto.EmotionLogItem{
			LogID:   log.LogID,
			LogDate: log.LogDate.Format("2006-01-02"),
			Note:    log.Note,
		}
		if log.Emotion != nil {
			item.Emotion = dto.EmotionRef{Name: log.Emotion.Name, Icon: log.Emotion.Icon}
		}
		items = append(items, item)
	}
	return items, total, nil
}

// CreateToday records the user's emotions for the current calendar day. All
// rows are created in one transaction; any failure rolls the whole set back.
// The same-day pre-check runs inside that transaction but is not serialized
// against concurrent requests for the same user, so two simultaneous first
// logs of the day can both commit.
func (s *EmotionService) CreateToday(userID uuid.UUID, emotionIDs []uint, note *string) ([]models.EmotionLog, error) {
	if len(emotionIDs) == 0 {
		return nil, ErrNoEmotions
	}

	today := DayStart(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var created []models.EmotionLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.EmotionLog
		err := tx.Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, today, tomorrow).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyLogged
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		for _, emotionID := range emotionIDs {
			log := models.EmotionLog{
				UserID:    userID,
				EmotionID: emotionID,
				LogDate:   today,
				Note:      note,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
			created = append(created, log)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DailyCheck returns today's log row (with its emotion) or nil when the user
// has not recorded anything yet.
func (s *EmotionService) DailyCheck(userID uuid.UUID) (*models.EmotionLog, error) {
	today := DayStart(time.Now())
	var log models.EmotionLog
	err := s.db.Preload("Emotion").
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, today, today.AddDate(0, 0, 1)).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// The ORDER BY clause is the sole source of output order: dates ascending,
// counts descending within a date. The aggregation only reshapes.
const statsQuery = `
SELECT %s AS date, e.name, e.icon, COUNT(*) AS count
FROM emotion_logs el
JOIN emotions e ON el.emotion_id = e.emotion_id
WHERE el.user_id = ? AND el.log_date BETWEEN ? AND ? AND el.deleted_at IS NULL
GROUP BY 1, e.name, e.icon
ORDER BY date ASC, count DESC
`

// Stats returns per-day emotion counts for the inclusive date range.
func (s *EmotionService) Stats(userID uuid.UUID, start, end time.Time) (*stats.Grouped, error) {
	return s.Trend(userID, start, end, stats.BucketDay)
}

// Trend returns emotion counts grouped by the bucket granularity.
func (s *EmotionService) Trend(userID uuid.UUID, start, end time.Time, bucket stats.Bucket) (*stats.Grouped, error) {
	query := fmt.Sprintf(statsQuery, bucket.DateExpr(s.db.Dialector.Name()))

	rows, err := s.db.Raw(query, userID, start, end).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var rec stats.Record
		var count string
		if err := rows.Scan(&rec.Date, &rec.Name, &rec.Icon, &count); err != nil {
			return nil, err
		}
		rec.Count = json.Number(count)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats.GroupByDate(records)
}
