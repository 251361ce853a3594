package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockProjectStore implements store.ProjectStore for testing
type MockProjectStore struct {
	CreateFn       func(ctx context.Context, project *domain.Project) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Project, error)
	GetForUpdateFn func(ctx context.Context, id int64) (*domain.Project, error)
	ListByUserFn   func(ctx context.Context, userID int64) ([]*domain.Project, error)
	UpdateFn       func(ctx context.Context, project *domain.Project) error
	DeleteFn       func(ctx context.Context, id int64) error

	// OnDelete, when set, is called after a project is removed by the
	// default Delete. Tests use it to cascade into a MockTaskStore.
	OnDelete func(id int64)

	// WithTxCalls counts WithTx invocations.
	WithTxCalls int

	mu       sync.Mutex
	projects map[int64]domain.Project
	nextID   int64
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// NewMockProjectStore creates a new mock store with initialized defaults
func NewMockProjectStore() *MockProjectStore {
	return &MockProjectStore{projects: make(map[int64]domain.Project)}
}

// Put stores a copy of p, keeping its ID. Useful for seeding tests.
func (m *MockProjectStore) Put(p *domain.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = *p
	if p.ID > m.nextID {
		m.nextID = p.ID
	}
}

// Create implements store.ProjectStore
func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, project)
	}
	if err := project.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	project.ID = m.nextID
	m.projects[project.ID] = *project
	return nil
}

// GetByID implements store.ProjectStore
func (m *MockProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.get(id)
}

// GetForUpdate implements store.ProjectStore
func (m *MockProjectStore) GetForUpdate(ctx context.Context, id int64) (*domain.Project, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return m.get(id)
}

func (m *MockProjectStore) get(id int64) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return &p, nil
}

// ListByUser implements store.ProjectStore
func (m *MockProjectStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Project, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Project, 0)
	for _, p := range m.projects {
		if p.UserID == userID {
			p := p
			result = append(result, &p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update implements store.ProjectStore
func (m *MockProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, project)
	}
	if err := project.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[project.ID]; !ok {
		return store.ErrProjectNotFound
	}
	project.UpdatedAt = time.Now().UTC()
	m.projects[project.ID] = *project
	return nil
}

// Delete implements store.ProjectStore
func (m *MockProjectStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	if _, ok := m.projects[id]; !ok {
		m.mu.Unlock()
		return store.ErrProjectNotFound
	}
	delete(m.projects, id)
	m.mu.Unlock()

	if m.OnDelete != nil {
		m.OnDelete(id)
	}
	return nil
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}
