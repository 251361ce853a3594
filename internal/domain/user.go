package domain

import (
	"strings"
	"time"
)

// User is a registered account. Projects are owned by users.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser builds an unsaved user. The ID is assigned by the store.
func NewUser(username, email, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks that the required fields are present.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return NewValidationError("username", "cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "cannot be empty", ErrValidation)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrValidation)
	}
	return nil
}
