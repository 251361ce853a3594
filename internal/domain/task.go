package domain

import (
	"strings"
	"time"
)

// Task is a unit of work inside a project. Ownership is inherited from
// the parent project.
type Task struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"projectId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask builds an unsaved task inside projectID.
func NewTask(projectID int64, description string) (*Task, error) {
	now := time.Now().UTC()
	t := &Task{
		ProjectID:   projectID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that the task belongs to a project and has a description.
func (t *Task) Validate() error {
	if t.ProjectID <= 0 {
		return NewValidationError("projectId", "must reference a project", ErrValidation)
	}
	if strings.TrimSpace(t.Description) == "" {
		return NewValidationError("description", "cannot be empty", ErrValidation)
	}
	return nil
}
