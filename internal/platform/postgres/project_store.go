package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/store"
)

const projectColumns = `id, user_id, title, created_at, updated_at`

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the ProjectStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// WithTx implements store.ProjectStore.WithTx
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &PostgresProjectStore{db: tx, logger: s.logger}
}

// Create implements store.ProjectStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during create", redact.Attr(err))
		return err
	}

	query := `
		INSERT INTO projects (user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		project.UserID,
		project.Title,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during project creation",
				slog.Int64("user_id", project.UserID))
			return fmt.Errorf("%w: user with ID %d not found", store.ErrInvalidEntity, project.UserID)
		}
		log.Error("failed to create project",
			redact.Attr(err),
			slog.Int64("user_id", project.UserID))
		return MapError(err)
	}

	log.Info("project created successfully",
		slog.Int64("project_id", project.ID),
		slog.Int64("user_id", project.UserID))
	return nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *PostgresProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.get(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
}

// GetForUpdate implements store.ProjectStore.GetForUpdate
// Only meaningful on a transaction-bound store.
func (s *PostgresProjectStore) GetForUpdate(ctx context.Context, id int64) (*domain.Project, error) {
	return s.get(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresProjectStore) get(ctx context.Context, query string, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving project by ID", slog.Int64("project_id", id))

	var p domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.Int64("project_id", id))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			redact.Attr(err),
			slog.Int64("project_id", id))
		return nil, MapError(err)
	}
	return &p, nil
}

// ListByUser implements store.ProjectStore.ListByUser
func (s *PostgresProjectStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		log.Error("failed to list projects",
			redact.Attr(err),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Error("failed to scan project row", redact.Attr(err))
			return nil, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating project rows", redact.Attr(err))
		return nil, err
	}

	log.Debug("listed projects",
		slog.Int64("user_id", userID),
		slog.Int("count", len(projects)))
	return projects, nil
}

// Update implements store.ProjectStore.Update
// Only the title is writable. UpdatedAt is refreshed on the passed project.
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during update", redact.Attr(err))
		return err
	}

	project.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE projects SET title = $1, updated_at = $2 WHERE id = $3`,
		project.Title, project.UpdatedAt, project.ID)
	if err != nil {
		log.Error("failed to update project",
			redact.Attr(err),
			slog.Int64("project_id", project.ID))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project updated successfully", slog.Int64("project_id", project.ID))
	return nil
}

// Delete implements store.ProjectStore.Delete
func (s *PostgresProjectStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			redact.Attr(err),
			slog.Int64("project_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project deleted successfully", slog.Int64("project_id", id))
	return nil
}
