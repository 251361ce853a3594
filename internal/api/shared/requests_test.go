package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleRequest struct {
	Title string `json:"title" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		wantMessage string
	}{
		{
			name:        "valid json",
			requestBody: `{"title": "groceries"}`,
		},
		{
			name:        "malformed json",
			requestBody: `{"title": "groceries",}`,
			wantErr:     true,
			wantMessage: apperr.MsgUnprocessableEntity,
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			wantMessage: apperr.MsgUnprocessableEntity,
		},
		{
			name:        "missing required field",
			requestBody: `{}`,
			wantErr:     true,
			wantMessage: "title is required",
		},
		{
			name:        "empty required field",
			requestBody: `{"title": ""}`,
			wantErr:     true,
			wantMessage: "title is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.requestBody))

			var body titleRequest
			err := DecodeJSON(req, &body)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "groceries", body.Title)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrUnprocessableEntity)
			e, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantMessage, e.Message)
		})
	}
}

func TestDecodeJSONRejectsOversizedBodies(t *testing.T) {
	big := `{"title": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	var body titleRequest
	err := DecodeJSON(req, &body)
	assert.ErrorIs(t, err, apperr.ErrUnprocessableEntity)
}
