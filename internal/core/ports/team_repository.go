package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	Create(ctx context.Context, t *domain.Team) error
	FindByTeamID(ctx context.Context, teamID string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}
