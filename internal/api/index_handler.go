package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// WelcomeMessage is the body served at the API root.
const WelcomeMessage = "Welcome to the taskboard API."

// IndexHandler serves the unauthenticated informational routes.
type IndexHandler struct{}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Welcome handles GET /.
func (h *IndexHandler) Welcome(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithText(w, http.StatusOK, WelcomeMessage)
	return nil
}

// Health handles GET /health.
func (h *IndexHandler) Health(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithText(w, http.StatusOK, "OK")
	return nil
}
