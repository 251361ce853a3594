package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// ProjectHandler handles the /projects routes. All of them require an
// authenticated user.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Index handles GET /projects.
func (h *ProjectHandler) Index(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	projects, err := h.projects.Index(r.Context(), user.ID)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projects)
	return nil
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	project, err := h.projects.Create(r.Context(), user.ID, req.Title)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
	return nil
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) error {
	user, id, err := userAndPathID(r)
	if err != nil {
		return err
	}
	var req ProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	project, err := h.projects.Update(r.Context(), id, user.ID, service.ProjectUpdate{Title: req.Title})
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
	return nil
}

// Delete handles DELETE /projects/{id} and echoes the deleted project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	user, id, err := userAndPathID(r)
	if err != nil {
		return err
	}

	project, err := h.projects.Delete(r.Context(), id, user.ID)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, project)
	return nil
}
