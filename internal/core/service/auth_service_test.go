package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

type stubGuard struct {
	failures map[string]int
	limit    int
}

func newStubGuard(limit int) *stubGuard {
	return &stubGuard{failures: make(map[string]int), limit: limit}
}

func (g *stubGuard) TooManyFailures(_ context.Context, email string) (bool, error) {
	return g.failures[email] >= g.limit, nil
}

func (g *stubGuard) RecordFailure(_ context.Context, email string) error {
	g.failures[email]++
	return nil
}

func (g *stubGuard) Clear(_ context.Context, email string) error {
	delete(g.failures, email)
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubGuard(5), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %s, got %s", domain.RoleUser, user.Role)
	}
	if user.UserID == "" {
		t.Fatalf("expected generated user id")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "bob@example.com", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubGuard(5), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("expected role %s, got %v", domain.RoleUser, claims["role"])
	}
	if claims["user_id"] != user.UserID {
		t.Fatalf("expected user_id claim %s, got %v", user.UserID, claims["user_id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	guard := newStubGuard(5)
	svc := NewAuthService(repo, guard, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if guard.failures["dave@example.com"] != 1 {
		t.Fatalf("expected failure recorded, got %d", guard.failures["dave@example.com"])
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	guard := newStubGuard(2)
	svc := NewAuthService(repo, guard, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Eve", "eve@example.com", "rightpass")

	for i := 0; i < 2; i++ {
		_, _, _ = svc.Login(context.Background(), "eve@example.com", "wrong")
	}

	// Even the correct password is rejected once the budget is exhausted.
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "rightpass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ClearsGuardOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	guard := newStubGuard(5)
	svc := NewAuthService(repo, guard, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Frank", "frank@example.com", "pass")
	_, _, _ = svc.Login(context.Background(), "frank@example.com", "wrong")

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if guard.failures["frank@example.com"] != 0 {
		t.Fatalf("expected guard cleared, got %d", guard.failures["frank@example.com"])
	}
}
