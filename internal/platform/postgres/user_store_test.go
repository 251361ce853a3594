package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "email", "hashed_password", "created_at", "updated_at"}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Run("assigns id and lowercases email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("alice", "alice@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		s := postgres.NewPostgresUserStore(db, nil)
		user, err := domain.NewUser("alice", " Alice@Example.com ", "hash")
		require.NoError(t, err)

		require.NoError(t, s.Create(context.Background(), user))
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(newPgError("23505", "users_email_key"))

		s := postgres.NewPostgresUserStore(db, nil)
		user, err := domain.NewUser("alice", "alice@example.com", "hash")
		require.NoError(t, err)

		err = s.Create(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.True(t, store.IsDuplicateError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid user never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s := postgres.NewPostgresUserStore(db, nil)
		err = s.Create(context.Background(), &domain.User{Email: "a@b.c", HashedPassword: "x"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserStore_Get(t *testing.T) {
	now := time.Now().UTC()

	t.Run("by id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(int64(3), "bob", "bob@example.com", "hash", now, now))

		user, err := postgres.NewPostgresUserStore(db, nil).GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, "hash", user.HashedPassword)
	})

	t.Run("by email is case insensitive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("bob@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(int64(3), "bob", "bob@example.com", "hash", now, now))

		user, err := postgres.NewPostgresUserStore(db, nil).GetByEmail(context.Background(), "BOB@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err = postgres.NewPostgresUserStore(db, nil).GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("driver failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		failure := errors.New("connection refused")
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(failure)

		_, err = postgres.NewPostgresUserStore(db, nil).GetByEmail(context.Background(), "x@y.z")
		assert.ErrorIs(t, err, failure)
		assert.False(t, store.IsNotFoundError(err))
	})
}
