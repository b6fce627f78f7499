package services

import (
	"errors"
	"testing"
	"time"

	"github.com/soyeonjeong/maumlog/internal/config"
	"github.com/soyeonjeong/maumlog/internal/dto"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
		Nickname: "newbie",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected a token pair")
	}
	if resp.User.Email != "new@example.com" || resp.User.Nickname != "newbie" {
		t.Errorf("user payload = %+v", resp.User)
	}

	login, err := service.Login(&dto.LoginRequest{Email: "new@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("login returned user %s, want %s", login.User.ID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "password123", Nickname: "dup"}
	if _, err := service.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := service.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register error = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	cases := []dto.RegisterRequest{
		{Email: "not-an-email", Password: "password123", Nickname: "ok"},
		{Email: "short@example.com", Password: "short", Nickname: "ok"},
		{Email: "nick@example.com", Password: "password123", Nickname: "x"},
	}
	for _, req := range cases {
		if _, err := service.Register(&req); err == nil {
			t.Errorf("Register(%+v) accepted invalid input", req)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	if _, err := service.Register(&dto.RegisterRequest{
		Email: "who@example.com", Password: "password123", Nickname: "who",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := service.Login(&dto.LoginRequest{Email: "who@example.com", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}

	_, err = service.Login(&dto.LoginRequest{Email: "missing@example.com", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	resp, err := service.Register(&dto.RegisterRequest{
		Email: "rotate@example.com", Password: "password123", Nickname: "rotate",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	rotated, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == resp.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The presented token is revoked; replaying it must fail.
	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("replay error = %v, want ErrInvalidToken", err)
	}

	// The rotated token is still good.
	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: rotated.RefreshToken}); err != nil {
		t.Fatalf("rotated token rejected: %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testAuthConfig())

	resp, err := service.Register(&dto.RegisterRequest{
		Email: "bye@example.com", Password: "password123", Nickname: "bye",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := service.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("revoked token error = %v, want ErrInvalidToken", err)
	}
}
