package domain

import (
	"strings"
	"time"
)

// Project is a named container of tasks owned by exactly one user.
type Project struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProject builds an unsaved project owned by userID.
func NewProject(userID int64, title string) (*Project, error) {
	now := time.Now().UTC()
	p := &Project{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the project has an owner and a title.
func (p *Project) Validate() error {
	if p.UserID <= 0 {
		return NewValidationError("userId", "must reference a user", ErrValidation)
	}
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	return nil
}

// OwnedBy reports whether userID owns the project.
func (p *Project) OwnedBy(userID int64) bool {
	return p.UserID == userID
}
