// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields that override a method when set. When a
// field is nil the mock falls back to a small in-memory implementation that
// behaves like the real store: ids are assigned sequentially, lookups of
// unknown ids return the store's not-found errors and list results are
// ordered by id.
//
// Usage:
//
//	users := mocks.NewMockUserStore()
//	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	    return nil, errors.New("database down")
//	}
package mocks
