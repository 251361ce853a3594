package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// ProjectUpdate holds the writable fields of a project.
type ProjectUpdate struct {
	Title string
}

// ProjectService provides ownership-checked project operations.
type ProjectService interface {
	// Create creates a project owned by userID.
	Create(ctx context.Context, userID int64, title string) (*domain.Project, error)

	// Index lists the user's projects in creation order.
	Index(ctx context.Context, userID int64) ([]*domain.Project, error)

	// VerifyPermission returns the project if userID owns it.
	// Returns NotFound when the project does not exist and Forbidden when
	// another user owns it.
	VerifyPermission(ctx context.Context, id, userID int64) (*domain.Project, error)

	// Update applies in to a project owned by userID and returns the result.
	Update(ctx context.Context, id, userID int64, in ProjectUpdate) (*domain.Project, error)

	// Delete removes a project owned by userID, together with its tasks,
	// and returns the record as it was before deletion.
	Delete(ctx context.Context, id, userID int64) (*domain.Project, error)
}

type projectServiceImpl struct {
	projects store.ProjectStore
	db       *sql.DB
	logger   *slog.Logger
}

var _ ProjectService = (*projectServiceImpl)(nil)

// NewProjectService creates a ProjectService. When db is nil, mutations
// run directly against projects without a surrounding transaction.
func NewProjectService(projects store.ProjectStore, db *sql.DB, log *slog.Logger) (ProjectService, error) {
	if projects == nil {
		return nil, errors.New("projects store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &projectServiceImpl{
		projects: projects,
		db:       db,
		logger:   log.With(slog.String("component", "project_service")),
	}, nil
}

func (s *projectServiceImpl) Create(ctx context.Context, userID int64, title string) (*domain.Project, error) {
	project, err := domain.NewProject(userID, title)
	if err != nil {
		return nil, mapStoreError("create_project", err)
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, mapStoreError("create_project", err)
	}
	return project, nil
}

func (s *projectServiceImpl) Index(ctx context.Context, userID int64) ([]*domain.Project, error) {
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreError("list_projects", err)
	}
	return projects, nil
}

func (s *projectServiceImpl) VerifyPermission(ctx context.Context, id, userID int64) (*domain.Project, error) {
	return s.verify(ctx, s.projects.GetByID, id, userID)
}

// verify loads a project with get and checks that userID owns it.
func (s *projectServiceImpl) verify(
	ctx context.Context,
	get func(context.Context, int64) (*domain.Project, error),
	id, userID int64,
) (*domain.Project, error) {
	project, err := get(ctx, id)
	if err != nil {
		return nil, mapStoreError("verify_project", err)
	}
	if !project.OwnedBy(userID) {
		logger.FromContextOrDefault(ctx, s.logger).Warn("project access denied",
			slog.Int64("project_id", id),
			slog.Int64("user_id", userID))
		return nil, apperr.Forbidden()
	}
	return project, nil
}

func (s *projectServiceImpl) Update(
	ctx context.Context,
	id, userID int64,
	in ProjectUpdate,
) (*domain.Project, error) {
	var updated *domain.Project
	err := s.inTx(ctx, func(ctx context.Context, projects store.ProjectStore) error {
		project, err := authorize(ctx,
			func(ctx context.Context) (*domain.Project, error) {
				return s.verify(ctx, projects.GetForUpdate, id, userID)
			},
			func(ctx context.Context, p *domain.Project) error {
				p.Title = in.Title
				return mapStoreError("update_project", projects.Update(ctx, p))
			})
		updated = project
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id, userID int64) (*domain.Project, error) {
	var deleted *domain.Project
	err := s.inTx(ctx, func(ctx context.Context, projects store.ProjectStore) error {
		project, err := authorize(ctx,
			func(ctx context.Context) (*domain.Project, error) {
				return s.verify(ctx, projects.GetForUpdate, id, userID)
			},
			func(ctx context.Context, p *domain.Project) error {
				return mapStoreError("delete_project", projects.Delete(ctx, p.ID))
			})
		deleted = project
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("project deleted",
		slog.Int64("project_id", id),
		slog.Int64("user_id", userID))
	return deleted, nil
}

// inTx runs fn with a transaction-bound project store, or with the plain
// store when no database handle was configured.
func (s *projectServiceImpl) inTx(
	ctx context.Context,
	fn func(ctx context.Context, projects store.ProjectStore) error,
) error {
	if s.db == nil {
		return fn(ctx, s.projects)
	}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.projects.WithTx(tx))
	})
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return &ServiceError{Operation: "project_transaction", Err: err}
}
