package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// AssignmentRepository handles the assigned_project_logs ledger.
type AssignmentRepository interface {
	// Insert appends a ledger entry. The collection carries a unique index on
	// project_id, so the insert itself is the race-free already-assigned
	// check: a duplicate key maps to domain.ErrProjectAlreadyAssigned.
	Insert(ctx context.Context, log *domain.AssignedProjectLog) error
	// FindByProjectID returns domain.ErrProjectNotAssigned when the project
	// has no ledger entry; any other error is a store failure.
	FindByProjectID(ctx context.Context, projectID string) (*domain.AssignedProjectLog, error)
	List(ctx context.Context) ([]*domain.AssignedProjectLog, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
