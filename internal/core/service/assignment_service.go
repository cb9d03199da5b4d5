package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// AssignmentService records project-to-team assignments in the ledger.
type AssignmentService struct {
	projects    ports.ProjectRepository
	teams       ports.TeamRepository
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	audit       ports.AuditRecorder
	logger      zerolog.Logger
}

func NewAssignmentService(
	projects ports.ProjectRepository,
	teams ports.TeamRepository,
	assignments ports.AssignmentRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		projects:    projects,
		teams:       teams,
		assignments: assignments,
		users:       users,
		audit:       audit,
		logger:      logger,
	}
}

// AssignProject appends a ledger entry binding the project to the team. The
// ledger's unique index on project_id makes the insert the authoritative
// already-assigned check; a duplicate surfaces as ErrProjectAlreadyAssigned.
func (s *AssignmentService) AssignProject(ctx context.Context, input ports.AssignProjectInput) (*domain.AssignedProjectLog, error) {
	project, err := s.projects.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.FindByTeamID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.FindByEmail(ctx, input.ActorEmail)
	if err != nil {
		return nil, err
	}
	actorID := domain.Identity{Email: actor.Email, UserID: actor.UserID}

	now := time.Now().UTC()
	log := &domain.AssignedProjectLog{
		ProjectID:  project.ProjectID,
		TeamID:     team.TeamID,
		TeamName:   team.TeamName,
		AssignedBy: actorID,
		Deadline:   input.Deadline,
		CreatedAt:  now,
	}

	if err := s.assignments.Insert(ctx, log); err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action:     domain.AuditProjectAssigned,
		Actor:      actorID,
		Subject:    project.ProjectID,
		Detail:     team.TeamID,
		OccurredAt: now,
	})

	s.logger.Info().
		Str("project_id", project.ProjectID).
		Str("team_id", team.TeamID).
		Str("assigned_by", actor.Email).
		Msg("project assigned")

	return log, nil
}
