package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// Stub services returning canned results so the handlers can be exercised
// without repositories. Error paths are asserted on the returned error; the
// central HTTP error handler renders those separately.

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (s *stubAuthService) Register(_ context.Context, fullName, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if s.registerUser != nil {
		return s.registerUser, nil
	}
	return &domain.User{UserID: "U-1", FullName: fullName, Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	user := s.loginUser
	if user == nil {
		user = &domain.User{UserID: "U-1", Email: email, Role: domain.RoleUser}
	}
	return s.loginToken, user, nil
}

type stubDirectoryService struct {
	modified  int64
	err       error
	gotActor  domain.Identity
	gotEmails []string
}

func (s *stubDirectoryService) AssignProjectManagers(_ context.Context, actor domain.Identity, emails []string) (int64, error) {
	s.gotActor = actor
	s.gotEmails = emails
	if s.err != nil {
		return 0, s.err
	}
	return s.modified, nil
}

type stubProjectService struct {
	createResult *ports.CreateProjectResult
	createErr    error
	gotInput     ports.CreateProjectInput
	view         *ports.ProjectView
	views        []ports.ProjectView
	err          error
}

func (s *stubProjectService) CreateProject(_ context.Context, input ports.CreateProjectInput) (*ports.CreateProjectResult, error) {
	s.gotInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *stubProjectService) GetProject(_ context.Context, _ string) (*ports.ProjectView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubProjectService) ListProjects(_ context.Context) ([]ports.ProjectView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

type stubAssignmentService struct {
	log      *domain.AssignedProjectLog
	err      error
	gotInput ports.AssignProjectInput
}

func (s *stubAssignmentService) AssignProject(_ context.Context, input ports.AssignProjectInput) (*domain.AssignedProjectLog, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.log, nil
}

type stubTeamService struct {
	createResult *ports.CreateTeamResult
	createErr    error
	gotInput     ports.CreateTeamInput
	teams        []*domain.Team
	listErr      error
}

func (s *stubTeamService) CreateTeam(_ context.Context, input ports.CreateTeamInput) (*ports.CreateTeamResult, error) {
	s.gotInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *stubTeamService) ListTeams(_ context.Context) ([]*domain.Team, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.teams, nil
}

// newTestContext builds an echo context carrying the given JSON body and,
// when authed is true, the claims the Auth middleware would have set.
func newTestContext(t *testing.T, method, body string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set("email", "pm@example.com")
		c.Set("role", domain.RoleProjectManager)
		c.Set("user_id", "U-1")
	}
	return c, rec
}

type recordedEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) recordedEnvelope {
	t.Helper()
	var env recordedEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}
