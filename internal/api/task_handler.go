package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles /projects/{id}/tasks and /tasks/{id}.
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Index handles GET /projects/{id}/tasks.
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) error {
	user, projectID, err := userAndPathID(r)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.Index(r.Context(), projectID, user.ID)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
	return nil
}

// Create handles POST /projects/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) error {
	user, projectID, err := userAndPathID(r)
	if err != nil {
		return err
	}
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	task, err := h.tasks.Create(r.Context(), projectID, user.ID, req.Description)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
	return nil
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) error {
	user, id, err := userAndPathID(r)
	if err != nil {
		return err
	}
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	task, err := h.tasks.Update(r.Context(), id, user.ID, service.TaskUpdate{Description: req.Description})
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
	return nil
}

// Delete handles DELETE /tasks/{id} and echoes the deleted task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	user, id, err := userAndPathID(r)
	if err != nil {
		return err
	}

	task, err := h.tasks.Delete(r.Context(), id, user.ID)
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
	return nil
}
