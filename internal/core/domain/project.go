package domain

import (
	"errors"
	"fmt"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "Pending"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidInput = errors.New("invalid input")

// ProjectIDPrefix is the human-readable prefix of sequential project ids.
const ProjectIDPrefix = "Project-"

// FormatProjectID renders the sequential project identifier for seq.
func FormatProjectID(seq int64) string {
	return fmt.Sprintf("%s%d", ProjectIDPrefix, seq)
}

// ParseDeadline accepts RFC3339 timestamps or plain dates ("2006-01-02").
func ParseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid deadline format", ErrInvalidInput)
}

// Project is a unit of work created by a project manager. ProjectID is a
// sequential human-readable identifier allocated from an atomic counter at
// creation time.
type Project struct {
	ProjectID   string        `json:"projectId" bson:"project_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	CreatedBy   Identity      `json:"createdBy" bson:"created_by"`
	Deadline    *time.Time    `json:"deadline" bson:"deadline,omitempty"`
	Status      ProjectStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
}
