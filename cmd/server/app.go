package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds the shared application dependencies and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	authService    service.AuthService
	projectService service.ProjectService
	taskService    service.TaskService
}

// newApplication builds the stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)
	logger.Info("authentication initialized",
		"token_lifetime", cfg.Auth.TokenLifetime.String())

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	if err := app.initServices(hasher, tokens); err != nil {
		return nil, err
	}

	logger.Info("application initialized")
	return app, nil
}

// initServices builds the services from the application's stores.
func (app *application) initServices(hasher auth.PasswordHasher, tokens auth.TokenService) error {
	var err error
	app.authService, err = service.NewAuthService(app.userStore, hasher, tokens, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	app.projectService, err = service.NewProjectService(app.projectStore, app.db, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create project service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, app.projectService, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create task service: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database pool.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
