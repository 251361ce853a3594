package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		email     string
		hash      string
		wantField string
	}{
		{"valid", "alice", "alice@example.com", "$2a$10$hash", ""},
		{"missing username", "  ", "alice@example.com", "$2a$10$hash", "username"},
		{"missing email", "alice", "", "$2a$10$hash", "email"},
		{"missing password", "alice", "alice@example.com", "", "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := NewUser(tc.username, tc.email, tc.hash)
			if tc.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.email, user.Email)
				assert.Zero(t, user.ID, "ID is assigned by the store")
				assert.False(t, user.CreatedAt.IsZero())
				return
			}

			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestNewProject(t *testing.T) {
	p, err := NewProject(3, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.UserID)
	assert.Equal(t, "Groceries", p.Title)

	_, err = NewProject(0, "Groceries")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewProject(3, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProjectOwnedBy(t *testing.T) {
	p := &Project{ID: 1, UserID: 42, Title: "P"}
	assert.True(t, p.OwnedBy(42))
	assert.False(t, p.OwnedBy(43))
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(9, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(9), task.ProjectID)

	_, err = NewTask(-1, "buy milk")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTask(9, " ")
	assert.ErrorIs(t, err, ErrValidation)
}
