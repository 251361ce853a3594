//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/phrazzld/taskboard-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, tx *sql.Tx) *domain.User {
	t.Helper()
	email := "user-" + uuid.NewString()[:8] + "@Example.com"
	user, err := domain.NewUser("tester", email, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresUserStore(tx, nil).Create(context.Background(), user))
	return user
}

func TestIntegration_UserStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, nil)
		user := createUser(t, tx)
		assert.NotZero(t, user.ID)

		got, err := users.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		dup, err := domain.NewUser("other", user.Email, "$2a$10$hash")
		require.NoError(t, err)
		err = users.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestIntegration_ProjectAndTaskStores(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		projects := postgres.NewPostgresProjectStore(tx, nil)
		tasks := postgres.NewPostgresTaskStore(tx, nil)
		owner := createUser(t, tx)

		project, err := domain.NewProject(owner.ID, "Groceries")
		require.NoError(t, err)
		require.NoError(t, projects.Create(ctx, project))

		task, err := domain.NewTask(project.ID, "buy milk")
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		locked, err := projects.GetForUpdate(ctx, project.ID)
		require.NoError(t, err)
		locked.Title = "Shopping"
		require.NoError(t, projects.Update(ctx, locked))

		list, err := projects.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Shopping", list[0].Title)

		require.NoError(t, projects.Delete(ctx, project.ID))

		_, err = tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound, "tasks are removed with their project")
		assert.ErrorIs(t, projects.Delete(ctx, project.ID), store.ErrProjectNotFound)
	})
}

func TestIntegration_TaskForMissingProject(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		task, err := domain.NewTask(987654321, "orphan")
		require.NoError(t, err)
		err = postgres.NewPostgresTaskStore(tx, nil).Create(context.Background(), task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
