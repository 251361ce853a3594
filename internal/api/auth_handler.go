package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register. The new account is logged in and
// its token returned.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	if _, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Email); err != nil {
		return err
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
	return nil
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return err
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
	return nil
}
