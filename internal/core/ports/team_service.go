package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// MemberInput identifies a picked user in a create-team request.
type MemberInput struct {
	Email  string
	UserID string
}

// CreateTeamInput carries all data needed to create a team, optionally
// assigning an existing project to it in the same operation.
type CreateTeamInput struct {
	TeamName   string
	TeamLeader MemberInput
	Members    []MemberInput
	// AssignedProjectID, when set, assigns that project to the new team.
	// Deadline is then required.
	AssignedProjectID string
	Deadline          string
	ActorEmail        string
}

// CreateTeamResult is returned by the service after creating a team.
type CreateTeamResult struct {
	Team *domain.Team
	// Assigned is true when a project was assigned to the team inline.
	Assigned bool
}

// TeamService defines use-case operations for teams.
type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*CreateTeamResult, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
}
