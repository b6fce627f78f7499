package services

import (
	"fmt"
	"testing"

	"github.com/soyeonjeong/maumlog/internal/database"
	"github.com/soyeonjeong/maumlog/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a named in-memory SQLite database so every test gets an
// isolated schema while GORM's connection pool still sees the same data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Emotion{},
		&models.EmotionLog{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
		&models.ComfortPost{},
		&models.ComfortLike{},
		&models.ComfortMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := database.SeedEmotions(db); err != nil {
		t.Fatalf("failed to seed emotions: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, nickname string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "not-a-real-hash", Nickname: nickname}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func emotionIDByName(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	var emotion models.Emotion
	if err := db.Where("name = ?", name).First(&emotion).Error; err != nil {
		t.Fatalf("emotion %q not seeded: %v", name, err)
	}
	return emotion.EmotionID
}
