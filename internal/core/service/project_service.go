package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// ProjectService implements project creation and retrieval.
type ProjectService struct {
	projects    ports.ProjectRepository
	teams       ports.TeamRepository
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	audit       ports.AuditRecorder
	logger      zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	teams ports.TeamRepository,
	assignments ports.AssignmentRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:    projects,
		teams:       teams,
		assignments: assignments,
		users:       users,
		audit:       audit,
		logger:      logger,
	}
}

// CreateProject allocates the next sequential project id and persists the
// project. When AssignedTeamID is set the project is assigned to that team in
// the same operation, which makes the deadline mandatory.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*ports.CreateProjectResult, error) {
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}

	var deadline *time.Time
	var team *domain.Team
	if input.AssignedTeamID != "" {
		if input.Deadline == "" {
			return nil, fmt.Errorf("%w: deadline is required when assigning a team", domain.ErrInvalidInput)
		}
		parsed, err := domain.ParseDeadline(input.Deadline)
		if err != nil {
			return nil, err
		}
		deadline = &parsed

		team, err = s.teams.FindByTeamID(ctx, input.AssignedTeamID)
		if err != nil {
			return nil, err
		}
	}

	manager, err := s.users.FindByEmail(ctx, input.ActorEmail)
	if err != nil {
		return nil, err
	}

	seq, err := s.projects.NextSequence(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("project sequence allocation failed")
		return nil, err
	}

	now := time.Now().UTC()
	creator := domain.Identity{Email: manager.Email, UserID: manager.UserID}
	project := &domain.Project{
		ProjectID:   domain.FormatProjectID(seq),
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   creator,
		Deadline:    deadline,
		Status:      domain.StatusPending,
		CreatedAt:   now,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("project_id", project.ProjectID).Msg("failed to create project")
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action:     domain.AuditProjectCreated,
		Actor:      creator,
		Subject:    project.ProjectID,
		Detail:     project.Title,
		OccurredAt: now,
	})

	result := &ports.CreateProjectResult{Project: project}

	if team != nil {
		log := &domain.AssignedProjectLog{
			ProjectID:  project.ProjectID,
			TeamID:     team.TeamID,
			TeamName:   team.TeamName,
			AssignedBy: creator,
			Deadline:   *deadline,
			CreatedAt:  now,
		}
		if err := s.assignments.Insert(ctx, log); err != nil {
			// The project is already persisted; there is no rollback here.
			return nil, err
		}
		result.AssignedTeam = team

		s.audit.Record(domain.AuditEvent{
			Action:     domain.AuditProjectAssigned,
			Actor:      creator,
			Subject:    project.ProjectID,
			Detail:     team.TeamID,
			OccurredAt: now,
		})
	}

	s.logger.Info().
		Str("project_id", project.ProjectID).
		Str("created_by", manager.Email).
		Bool("assigned", team != nil).
		Msg("project created")

	return result, nil
}

// GetProject returns a single project together with its assignment, if any.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ports.ProjectView, error) {
	project, err := s.projects.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	view := &ports.ProjectView{Project: project}
	assignment, err := s.assignments.FindByProjectID(ctx, projectID)
	switch {
	case err == nil:
		view.Assignment = assignment
	case !errors.Is(err, domain.ErrProjectNotAssigned):
		// An unassigned project is normal; a store failure is not.
		return nil, err
	}
	return view, nil
}

// ListProjects returns all projects paired with their assignments.
func (s *ProjectService) ListProjects(ctx context.Context) ([]ports.ProjectView, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}

	byProject := make(map[string]*domain.AssignedProjectLog, len(logs))
	for _, l := range logs {
		byProject[l.ProjectID] = l
	}

	views := make([]ports.ProjectView, len(projects))
	for i, p := range projects {
		views[i] = ports.ProjectView{Project: p, Assignment: byProject[p.ProjectID]}
	}
	return views, nil
}

