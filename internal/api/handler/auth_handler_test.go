package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(t, http.MethodPost,
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"secret1"}`, false)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "registration successful" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var data struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.User == nil || data.User.Email != "jane@example.com" || data.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", data.User)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{"email":"jane@example.com","password":"secret1"}`,
		`{"fullName":"Jane","email":"not-an-email","password":"secret1"}`,
		`{"fullName":"Jane","email":"jane@example.com","password":"abc"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, body, false)
		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, _ := newTestContext(t, http.MethodPost,
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"secret1"}`, false)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "signed-token"})
	c, rec := newTestContext(t, http.MethodPost,
		`{"email":"jane@example.com","password":"secret1"}`, false)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "login successful" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.Token != "signed-token" {
		t.Fatalf("expected token in payload, got %q", data.Token)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newTestContext(t, http.MethodPost,
		`{"email":"jane@example.com","password":"wrong1"}`, false)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrTooManyAttempts})
	c, _ := newTestContext(t, http.MethodPost,
		`{"email":"jane@example.com","password":"secret1"}`, false)

	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
