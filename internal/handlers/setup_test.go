package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soyeonjeong/maumlog/internal/config"
	"github.com/soyeonjeong/maumlog/internal/database"
	"github.com/soyeonjeong/maumlog/internal/dto"
	"github.com/soyeonjeong/maumlog/internal/handlers"
	"github.com/soyeonjeong/maumlog/internal/models"
	"github.com/soyeonjeong/maumlog/internal/routes"
	"github.com/soyeonjeong/maumlog/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	auth *services.AuthService
}

// setupTestApp wires the full route table against a named in-memory SQLite
// database, mirroring the production bootstrap minus the outer middleware.
func setupTestApp(t *testing.T) *testEnv {
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
	database.DB = db

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		CORSOrigins:      "*",
	}

	authService := services.NewAuthService(db, cfg)
	emotionService := services.NewEmotionService(db)
	comfortService := services.NewComfortService(db)
	challengeService := services.NewChallengeService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewEmotionHandler(emotionService),
		handlers.NewComfortHandler(comfortService),
		handlers.NewChallengeHandler(challengeService),
	)

	return &testEnv{app: app, db: db, auth: authService}
}

// registerUser creates an account directly through the service and returns a
// bearer token for request helpers.
func (e *testEnv) registerUser(t *testing.T, email, nickname string) string {
	t.Helper()

	resp, err := e.auth.Register(&dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Nickname: nickname,
	})
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return resp.AccessToken
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func (e *testEnv) emotionID(t *testing.T, name string) uint {
	t.Helper()

	var emotion models.Emotion
	if err := e.db.Where("name = ?", name).First(&emotion).Error; err != nil {
		t.Fatalf("emotion %q not seeded: %v", name, err)
	}
	return emotion.EmotionID
}

type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Offset     int   `json:"offset"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}
