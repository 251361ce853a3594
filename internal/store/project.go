package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create saves a new project and sets its ID.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)

	// GetForUpdate is GetByID with a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*domain.Project, error)

	// ListByUser returns the user's projects in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Project, error)

	// Update persists the project's title.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project and, through the schema, its tasks.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ProjectStore bound to tx.
	WithTx(tx *sql.Tx) ProjectStore
}
