package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MsgEmailRegistered is reported when registering an email that is taken.
const MsgEmailRegistered = "Email address already registered."

// MsgInvalidCredentials is reported when a login password does not match.
const MsgInvalidCredentials = "Invalid Credentials"

// ServiceError wraps unexpected errors with the operation that failed.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "update_project")
	Operation string
	// Err is the underlying error
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// mapStoreError translates store and domain errors into apperr kinds.
// Errors that are already *apperr.Error pass through unchanged; anything
// unrecognised is wrapped in a ServiceError.
func mapStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return apperr.UnprocessableEntity(vErr.Error()).Wrap(err)
	case errors.Is(err, store.ErrEmailExists):
		return apperr.Conflict(MsgEmailRegistered).Wrap(err)
	case store.IsDuplicateError(err):
		return apperr.Conflict().Wrap(err)
	case store.IsNotFoundError(err), errors.Is(err, store.ErrInvalidEntity):
		return apperr.NotFound().Wrap(err)
	}
	return &ServiceError{Operation: operation, Err: err}
}
