// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, plus the embedded goose migrations
// that create the users, projects and tasks tables.
package postgres
