package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func serve(h api.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	api.Handler(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestHandleError_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict", apperr.Conflict(), 409, "Conflict Access"},
		{"forbidden", apperr.Forbidden(), 403, "Forbidden Access"},
		{"not found", apperr.NotFound(), 404, "Resource Not Found"},
		{"unauthorized", apperr.Unauthorized(), 401, "Unauthorized Access"},
		{"unprocessable", apperr.UnprocessableEntity(), 422, "UnprocessableEntity"},
		{"custom message", apperr.UnprocessableEntity("Invalid Credentials"), 422, "Invalid Credentials"},
		{"wrapped", fmt.Errorf("update project: %w", apperr.Forbidden()), 403, "Forbidden Access"},
		{"cause is not exposed", apperr.NotFound().Wrap(errors.New("sql: no rows")), 404, "Resource Not Found"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(func(http.ResponseWriter, *http.Request) error { return tc.err })

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, shared.ErrorResponse{Status: tc.status, Message: tc.message}, decodeError(t, rec))
		})
	}
}

func TestHandleError_UnmappedErrorIsRedacted(t *testing.T) {
	t.Parallel()

	rec := serve(func(http.ResponseWriter, *http.Request) error {
		return errors.New("dial postgres://app:hunter2@db/taskboard refused")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, 400, body.Status)
	assert.NotContains(t, body.Message, "hunter2")
	assert.Equal(t, "dial postgres://[REDACTED_CREDENTIAL]@db/taskboard refused", body.Message)
}

func TestHandleError_AbortsWhenResponseStarted(t *testing.T) {
	t.Parallel()

	h := api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1}`))
		return errors.New("stream interrupted")
	})

	rec := httptest.NewRecorder()
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, `[{"id":1}`, rec.Body.String())
}

func TestHandler_SuccessWritesNothingExtra(t *testing.T) {
	t.Parallel()

	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]int{"id": 1})
		return nil
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}
