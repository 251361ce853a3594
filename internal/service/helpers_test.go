package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    *mocks.MockUserStore
	projects *mocks.MockProjectStore
	tasks    *mocks.MockTaskStore
	hasher   *mocks.MockPasswordHasher
	tokens   *mocks.MockTokenService

	auth        service.AuthService
	projectsSvc service.ProjectService
	tasksSvc    service.TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:    mocks.NewMockUserStore(),
		projects: mocks.NewMockProjectStore(),
		tasks:    mocks.NewMockTaskStore(),
		hasher:   &mocks.MockPasswordHasher{},
		tokens:   mocks.NewMockTokenService(),
	}
	f.projects.OnDelete = f.tasks.DeleteByProject

	var err error
	f.auth, err = service.NewAuthService(f.users, f.hasher, f.tokens, nil)
	require.NoError(t, err)
	f.projectsSvc, err = service.NewProjectService(f.projects, nil, nil)
	require.NoError(t, err)
	f.tasksSvc, err = service.NewTaskService(f.tasks, f.projectsSvc, nil)
	require.NoError(t, err)
	return f
}

func (f *fixture) register(t *testing.T, name string) *domain.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), name, "password", name+"@example.com")
	require.NoError(t, err)
	return u
}

func (f *fixture) project(t *testing.T, owner *domain.User, title string) *domain.Project {
	t.Helper()
	p, err := f.projectsSvc.Create(context.Background(), owner.ID, title)
	require.NoError(t, err)
	return p
}

func assertKind(t *testing.T, err error, kind *apperr.Error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, kind.Status, apperr.StatusOf(err))
}
