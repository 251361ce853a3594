// Package store defines interfaces for data persistence operations on users,
// projects and tasks. The interfaces keep the service layer independent of
// the database in use; internal/platform/postgres implements them.
package store
