package domain

import "time"

// Audit actions recorded for mutating operations.
const (
	AuditRoleGranted     = "role_granted"
	AuditProjectCreated  = "project_created"
	AuditTeamCreated     = "team_created"
	AuditProjectAssigned = "project_assigned"
)

// AuditEvent is an append-only trail entry. Events are written asynchronously;
// a failed write never fails the request that produced it.
type AuditEvent struct {
	Action     string    `json:"action"`
	Actor      Identity  `json:"actor"`
	Subject    string    `json:"subject"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
