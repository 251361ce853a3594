package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// pathID reads a positive integer id from the named chi path parameter.
// A missing or non-numeric value cannot name an existing resource, so it
// is reported as NotFound.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.NotFound().Wrap(fmt.Errorf("path parameter %s=%q: %w", name, raw, err))
	}
	if id <= 0 {
		return 0, apperr.NotFound().Wrap(fmt.Errorf("path parameter %s=%q is not positive", name, raw))
	}
	return id, nil
}

// currentUser returns the user placed in the context by the auth middleware.
func currentUser(r *http.Request) (*domain.User, error) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		return nil, apperr.Unauthorized()
	}
	return user, nil
}

// userAndPathID combines currentUser and pathID for the {id} routes.
func userAndPathID(r *http.Request) (*domain.User, int64, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, 0, err
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, 0, err
	}
	return user, id, nil
}
