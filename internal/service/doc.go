// Package service contains the application use cases: registration and
// login, and ownership-checked operations on projects and their tasks.
//
// Services depend on the store interfaces (internal/store), never on a
// concrete database. They translate store errors into apperr kinds so the
// API layer can report them without knowing where they came from.
//
// Mutations follow a single shape: load the resource, verify the caller
// owns it (directly for projects, through the parent project for tasks),
// then mutate. Project mutations run that sequence inside one database
// transaction with the row locked.
package service
