package handler

import "time"

// --- Request types ---

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	// Deadline is only required when AssignedTeam is set; the service
	// enforces that coupling.
	Deadline     string `json:"deadline,omitempty"`
	AssignedTeam string `json:"assignedTeam,omitempty"`
}

type assignProjectRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
	TeamID    string `json:"teamId"    validate:"required"`
	Deadline  string `json:"deadline"  validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type identityResponse struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

type projectResponse struct {
	ProjectID   string           `json:"projectId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedBy   identityResponse `json:"createdBy"`
	Deadline    *time.Time       `json:"deadline"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type assignmentResponse struct {
	ProjectID  string           `json:"projectId"`
	TeamID     string           `json:"teamId"`
	TeamName   string           `json:"teamName"`
	AssignedBy identityResponse `json:"assignedBy"`
	Deadline   time.Time        `json:"deadline"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type projectViewResponse struct {
	Project    projectResponse     `json:"project"`
	Assignment *assignmentResponse `json:"assignment,omitempty"`
}

type createProjectData struct {
	Project      projectResponse `json:"project"`
	AssignedTeam *teamResponse   `json:"assignedTeam,omitempty"`
}
