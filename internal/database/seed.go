package database

import (
	"log/slog"

	"github.com/soyeonjeong/maumlog/internal/models"
	"gorm.io/gorm"
)

var defaultEmotions = []models.Emotion{
	{Name: "Angry", Icon: "😠"},
	{Name: "Anxious", Icon: "😰"},
	{Name: "Calm", Icon: "😌"},
	{Name: "Excited", Icon: "🤩"},
	{Name: "Grateful", Icon: "🙏"},
	{Name: "Happy", Icon: "😊"},
	{Name: "Sad", Icon: "😢"},
	{Name: "Tired", Icon: "😴"},
}

// SeedEmotions inserts the default emotion catalog on first start.
func SeedEmotions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Emotion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultEmotions).Error; err != nil {
		return err
	}
	slog.Info("emotion catalog seeded", "count", len(defaultEmotions))
	return nil
}
