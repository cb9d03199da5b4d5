package handler

import "time"

type memberRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	UserID string `json:"userId" validate:"required"`
}

type createTeamRequest struct {
	TeamName   string          `json:"teamName"   validate:"required"`
	TeamLeader memberRequest   `json:"teamLeader" validate:"required"`
	Members    []memberRequest `json:"members"    validate:"required,min=1,dive"`
	// AssignedProject, when set, assigns that project to the new team;
	// Deadline is then required (enforced by the service).
	AssignedProject string `json:"assignedProject,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
}

type teamResponse struct {
	TeamID     string    `json:"teamId"`
	TeamName   string    `json:"teamName"`
	TeamLeader string    `json:"teamLeader"`
	Members    []string  `json:"members"`
	CreatedAt  time.Time `json:"createdAt"`
}
