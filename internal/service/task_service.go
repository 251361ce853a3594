package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskUpdate holds the writable fields of a task.
type TaskUpdate struct {
	Description string
}

// TaskService provides task operations. Access to a task is granted to the
// owner of its project.
type TaskService interface {
	// Create adds a task to a project owned by userID.
	Create(ctx context.Context, projectID, userID int64, description string) (*domain.Task, error)

	// Index lists the tasks of a project owned by userID in creation order.
	Index(ctx context.Context, projectID, userID int64) ([]*domain.Task, error)

	// VerifyPermission returns the task if userID owns its project.
	// Returns NotFound when the task does not exist and Forbidden when
	// another user owns the project.
	VerifyPermission(ctx context.Context, id, userID int64) (*domain.Task, error)

	// Update applies in to a task and returns the result.
	Update(ctx context.Context, id, userID int64, in TaskUpdate) (*domain.Task, error)

	// Delete removes a task and returns the record as it was before deletion.
	Delete(ctx context.Context, id, userID int64) (*domain.Task, error)
}

type taskServiceImpl struct {
	tasks    store.TaskStore
	projects ProjectService
	logger   *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a TaskService. Project ownership checks are
// delegated to projects.
func NewTaskService(tasks store.TaskStore, projects ProjectService, log *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("tasks store cannot be nil")
	}
	if projects == nil {
		return nil, errors.New("project service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &taskServiceImpl{
		tasks:    tasks,
		projects: projects,
		logger:   log.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskServiceImpl) Create(
	ctx context.Context,
	projectID, userID int64,
	description string,
) (*domain.Task, error) {
	if _, err := s.projects.VerifyPermission(ctx, projectID, userID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(projectID, description)
	if err != nil {
		return nil, mapStoreError("create_task", err)
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, mapStoreError("create_task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) Index(ctx context.Context, projectID, userID int64) ([]*domain.Task, error) {
	if _, err := s.projects.VerifyPermission(ctx, projectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, mapStoreError("list_tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) VerifyPermission(ctx context.Context, id, userID int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("verify_task", err)
	}
	if _, err := s.projects.VerifyPermission(ctx, task.ProjectID, userID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task access denied",
			slog.Int64("task_id", id),
			slog.Int64("user_id", userID))
		return nil, err
	}
	return task, nil
}

func (s *taskServiceImpl) Update(ctx context.Context, id, userID int64, in TaskUpdate) (*domain.Task, error) {
	return authorize(ctx,
		func(ctx context.Context) (*domain.Task, error) {
			return s.VerifyPermission(ctx, id, userID)
		},
		func(ctx context.Context, t *domain.Task) error {
			t.Description = in.Description
			return mapStoreError("update_task", s.tasks.Update(ctx, t))
		})
}

func (s *taskServiceImpl) Delete(ctx context.Context, id, userID int64) (*domain.Task, error) {
	return authorize(ctx,
		func(ctx context.Context) (*domain.Task, error) {
			return s.VerifyPermission(ctx, id, userID)
		},
		func(ctx context.Context, t *domain.Task) error {
			return mapStoreError("delete_task", s.tasks.Delete(ctx, t.ID))
		})
}
