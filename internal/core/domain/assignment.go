package domain

import (
	"errors"
	"time"
)

var ErrProjectAlreadyAssigned = errors.New("project is already assigned to a team")

// ErrProjectNotAssigned reports that a project has no ledger entry. Callers
// treating an unassigned project as normal must match this sentinel and
// propagate anything else as a store failure.
var ErrProjectNotAssigned = errors.New("project is not assigned to a team")

// AssignedProjectLog is the append-only record of a project-to-team
// assignment. At most one entry may exist per project; the ledger, not the
// project document, is the source of truth for "is this project assigned".
type AssignedProjectLog struct {
	ProjectID  string    `json:"projectId" bson:"project_id"`
	TeamID     string    `json:"teamId" bson:"team_id"`
	TeamName   string    `json:"teamName" bson:"team_name"`
	AssignedBy Identity  `json:"assignedBy" bson:"assigned_by"`
	Deadline   time.Time `json:"deadline" bson:"deadline"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}
