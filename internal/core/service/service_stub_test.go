package service

import (
	"context"
	"sync"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// Shared in-memory stubs used across the service tests.

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) AssignRole(_ context.Context, emails []string, role string) (int64, error) {
	var modified int64
	for _, email := range emails {
		u, ok := r.users[email]
		if !ok || u.Role == role {
			continue
		}
		u.Role = role
		modified++
	}
	return modified, nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	seq      int64
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects[p.ProjectID] = &clone
	return nil
}

func (r *stubProjectRepo) FindByProjectID(_ context.Context, projectID string) (*domain.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) NextSequence(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

type stubTeamRepo struct {
	teams map[string]*domain.Team
}

func newStubTeamRepo() *stubTeamRepo {
	return &stubTeamRepo{teams: make(map[string]*domain.Team)}
}

func (r *stubTeamRepo) Create(_ context.Context, t *domain.Team) error {
	clone := *t
	r.teams[t.TeamID] = &clone
	return nil
}

func (r *stubTeamRepo) FindByTeamID(_ context.Context, teamID string) (*domain.Team, error) {
	t, ok := r.teams[teamID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTeamRepo) List(_ context.Context) ([]*domain.Team, error) {
	out := make([]*domain.Team, 0, len(r.teams))
	for _, t := range r.teams {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

// stubAssignmentRepo enforces the unique project_id constraint the way the
// real collection index does.
type stubAssignmentRepo struct {
	logs map[string]*domain.AssignedProjectLog
}

func newStubAssignmentRepo() *stubAssignmentRepo {
	return &stubAssignmentRepo{logs: make(map[string]*domain.AssignedProjectLog)}
}

func (r *stubAssignmentRepo) Insert(_ context.Context, log *domain.AssignedProjectLog) error {
	if _, exists := r.logs[log.ProjectID]; exists {
		return domain.ErrProjectAlreadyAssigned
	}
	clone := *log
	r.logs[log.ProjectID] = &clone
	return nil
}

func (r *stubAssignmentRepo) FindByProjectID(_ context.Context, projectID string) (*domain.AssignedProjectLog, error) {
	l, ok := r.logs[projectID]
	if !ok {
		return nil, domain.ErrProjectNotAssigned
	}
	clone := *l
	return &clone, nil
}

func (r *stubAssignmentRepo) List(_ context.Context) ([]*domain.AssignedProjectLog, error) {
	out := make([]*domain.AssignedProjectLog, 0, len(r.logs))
	for _, l := range r.logs {
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

// recordingAudit captures events handed to the recorder.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, e := range a.events {
		out[i] = e.Action
	}
	return out
}
