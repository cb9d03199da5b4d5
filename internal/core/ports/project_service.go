package ports

import (
	"context"
	"time"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. ActorEmail
// comes from the verified token; the creator snapshot is resolved from it.
type CreateProjectInput struct {
	Title       string
	Description string
	// Deadline is the raw value from the request. It is only required (and
	// parsed) when AssignedTeamID is set.
	Deadline       string
	AssignedTeamID string
	ActorEmail     string
}

// CreateProjectResult is returned by the service after creating a project.
type CreateProjectResult struct {
	Project *domain.Project
	// AssignedTeam is non-nil when the project was assigned inline.
	AssignedTeam *domain.Team
}

// ProjectView pairs a project with its current assignment, if any.
type ProjectView struct {
	Project    *domain.Project
	Assignment *domain.AssignedProjectLog
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*CreateProjectResult, error)
	GetProject(ctx context.Context, projectID string) (*ProjectView, error)
	ListProjects(ctx context.Context) ([]ProjectView, error)
}

// AssignProjectInput carries the parameters of a standalone assignment.
type AssignProjectInput struct {
	ProjectID  string
	TeamID     string
	Deadline   time.Time
	ActorEmail string
}

// AssignmentService records project-to-team assignments.
type AssignmentService interface {
	AssignProject(ctx context.Context, input AssignProjectInput) (*domain.AssignedProjectLog, error)
}

// AuditRecorder accepts audit events for asynchronous persistence.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
