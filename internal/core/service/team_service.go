package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// TeamService implements team creation and retrieval.
type TeamService struct {
	teams       ports.TeamRepository
	projects    ports.ProjectRepository
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	audit       ports.AuditRecorder
	logger      zerolog.Logger
}

func NewTeamService(
	teams ports.TeamRepository,
	projects ports.ProjectRepository,
	assignments ports.AssignmentRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *TeamService {
	return &TeamService{
		teams:       teams,
		projects:    projects,
		assignments: assignments,
		users:       users,
		audit:       audit,
		logger:      logger,
	}
}

// CreateTeam stores a team from a picked leader and member list. The leader is
// stripped out of the member list before storing; they are tracked separately
// and never duplicated as a plain member. When AssignedProjectID is set, the
// project is assigned to the new team in the same operation.
//
// The team is persisted before the assignment checks run, so a failed
// assignment leaves the team in place without a ledger entry. There is no
// rollback.
func (s *TeamService) CreateTeam(ctx context.Context, input ports.CreateTeamInput) (*ports.CreateTeamResult, error) {
	if input.TeamName == "" || input.TeamLeader.UserID == "" || len(input.Members) == 0 {
		return nil, fmt.Errorf("%w: team name, leader and members are required", domain.ErrInvalidInput)
	}

	actor, err := s.users.FindByEmail(ctx, input.ActorEmail)
	if err != nil {
		return nil, err
	}
	actorID := domain.Identity{Email: actor.Email, UserID: actor.UserID}

	memberIDs := make([]string, 0, len(input.Members))
	for _, m := range input.Members {
		if m.Email == input.TeamLeader.Email {
			continue
		}
		memberIDs = append(memberIDs, m.UserID)
	}

	now := time.Now().UTC()
	team := &domain.Team{
		TeamID:     generateTeamID(),
		TeamName:   input.TeamName,
		TeamLeader: input.TeamLeader.UserID,
		Members:    memberIDs,
		CreatedBy:  actorID,
		CreatedAt:  now,
	}

	if err := s.teams.Create(ctx, team); err != nil {
		s.logger.Error().Err(err).Str("team_name", input.TeamName).Msg("failed to create team")
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action:     domain.AuditTeamCreated,
		Actor:      actorID,
		Subject:    team.TeamID,
		Detail:     team.TeamName,
		OccurredAt: now,
	})

	result := &ports.CreateTeamResult{Team: team}

	if input.AssignedProjectID != "" {
		if input.Deadline == "" {
			return nil, fmt.Errorf("%w: deadline is required when assigning a project", domain.ErrInvalidInput)
		}
		deadline, err := domain.ParseDeadline(input.Deadline)
		if err != nil {
			return nil, err
		}

		project, err := s.projects.FindByProjectID(ctx, input.AssignedProjectID)
		if err != nil {
			return nil, err
		}

		log := &domain.AssignedProjectLog{
			ProjectID:  project.ProjectID,
			TeamID:     team.TeamID,
			TeamName:   team.TeamName,
			AssignedBy: actorID,
			Deadline:   deadline,
			CreatedAt:  now,
		}
		if err := s.assignments.Insert(ctx, log); err != nil {
			return nil, err
		}
		result.Assigned = true

		s.audit.Record(domain.AuditEvent{
			Action:     domain.AuditProjectAssigned,
			Actor:      actorID,
			Subject:    project.ProjectID,
			Detail:     team.TeamID,
			OccurredAt: now,
		})
	}

	s.logger.Info().
		Str("team_id", team.TeamID).
		Int("members", len(memberIDs)).
		Bool("assigned", result.Assigned).
		Msg("team created")

	return result, nil
}

// ListTeams returns all teams.
func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

// generateTeamID returns a unique team id in the format Team-XXXXXXXX.
func generateTeamID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("Team-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("Team-%08X", b)
}
