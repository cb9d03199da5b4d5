package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByProjectID(ctx context.Context, projectID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// NextSequence atomically increments and returns the project id sequence.
	// The first call returns 1.
	NextSequence(ctx context.Context) (int64, error)
}
