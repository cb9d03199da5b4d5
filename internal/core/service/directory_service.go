package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// DirectoryService implements administrative user-directory operations.
type DirectoryService struct {
	repo   ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, audit: audit, logger: logger}
}

// AssignProjectManagers grants the ProjectManager role to every matching user.
// Users already holding the role are counted as unmodified by the store, so a
// repeat call over the same emails yields ErrNoUsersMatched.
func (s *DirectoryService) AssignProjectManagers(ctx context.Context, actor domain.Identity, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, fmt.Errorf("%w: no users provided for role assignment", domain.ErrInvalidInput)
	}

	modified, err := s.repo.AssignRole(ctx, emails, domain.RoleProjectManager)
	if err != nil {
		s.logger.Error().Err(err).Int("emails", len(emails)).Msg("bulk role assignment failed")
		return 0, err
	}
	if modified == 0 {
		return 0, domain.ErrNoUsersMatched
	}

	s.audit.Record(domain.AuditEvent{
		Action:     domain.AuditRoleGranted,
		Actor:      actor,
		Subject:    strings.Join(emails, ","),
		Detail:     fmt.Sprintf("%d user(s) granted %s", modified, domain.RoleProjectManager),
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info().Int64("modified", modified).Msg("project manager role granted")
	return modified, nil
}
