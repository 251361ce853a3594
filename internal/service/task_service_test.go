package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	projects, err := service.NewProjectService(mocks.NewMockProjectStore(), nil, nil)
	require.NoError(t, err)

	_, err = service.NewTaskService(nil, projects, nil)
	assert.Error(t, err)
	_, err = service.NewTaskService(mocks.NewMockTaskStore(), nil, nil)
	assert.Error(t, err)
}

func TestTaskService_CreateAndIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	p := f.project(t, alice, "chores")

	first, err := f.tasksSvc.Create(ctx, p.ID, alice.ID, "dishes")
	require.NoError(t, err)
	assert.Equal(t, p.ID, first.ProjectID)
	_, err = f.tasksSvc.Create(ctx, p.ID, alice.ID, "laundry")
	require.NoError(t, err)

	tasks, err := f.tasksSvc.Index(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "dishes", tasks[0].Description)
	assert.Equal(t, "laundry", tasks[1].Description)

	_, err = f.tasksSvc.Create(ctx, p.ID, bob.ID, "sneaky")
	assertKind(t, err, apperr.ErrForbidden)
	_, err = f.tasksSvc.Index(ctx, p.ID, bob.ID)
	assertKind(t, err, apperr.ErrForbidden)

	_, err = f.tasksSvc.Create(ctx, 999, alice.ID, "nowhere")
	assertKind(t, err, apperr.ErrNotFound)

	_, err = f.tasksSvc.Create(ctx, p.ID, alice.ID, " ")
	assertKind(t, err, apperr.ErrUnprocessableEntity)
}

func TestTaskService_OwnershipIsTransitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	p := f.project(t, alice, "chores")
	task, err := f.tasksSvc.Create(ctx, p.ID, alice.ID, "dishes")
	require.NoError(t, err)

	_, err = f.tasksSvc.VerifyPermission(ctx, task.ID, bob.ID)
	assertKind(t, err, apperr.ErrForbidden)

	_, err = f.tasksSvc.Update(ctx, task.ID, bob.ID, service.TaskUpdate{Description: "hijacked"})
	assertKind(t, err, apperr.ErrForbidden)

	_, err = f.tasksSvc.Delete(ctx, task.ID, bob.ID)
	assertKind(t, err, apperr.ErrForbidden)

	stored, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "dishes", stored.Description)
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	p := f.project(t, alice, "chores")
	task, err := f.tasksSvc.Create(ctx, p.ID, alice.ID, "dishes")
	require.NoError(t, err)

	updated, err := f.tasksSvc.Update(ctx, task.ID, alice.ID, service.TaskUpdate{Description: "all the dishes"})
	require.NoError(t, err)
	assert.Equal(t, "all the dishes", updated.Description)

	_, err = f.tasksSvc.Update(ctx, task.ID, alice.ID, service.TaskUpdate{Description: ""})
	assertKind(t, err, apperr.ErrUnprocessableEntity)

	deleted, err := f.tasksSvc.Delete(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)
	assert.Equal(t, "all the dishes", deleted.Description)

	_, err = f.tasksSvc.Delete(ctx, task.ID, alice.ID)
	assertKind(t, err, apperr.ErrNotFound)
	_, err = f.tasksSvc.Update(ctx, 12345, alice.ID, service.TaskUpdate{Description: "x"})
	assertKind(t, err, apperr.ErrNotFound)
}
