package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// Authenticator is the part of the auth service the middleware needs.
type Authenticator interface {
	Validate(ctx context.Context, token string) bool
	Decode(ctx context.Context, token string) (*auth.Claims, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	auth Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: authenticator}
}

// Authenticate resolves the caller from the Authorization header and stores
// the user in the request context. Any failure is answered with 401.
//
// The header is split on whitespace and its second field is the token; the
// scheme in the first field is not inspected.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err != nil {
			logger.FromContext(r.Context()).Debug("authentication failed",
				slog.String("path", r.URL.Path),
				slog.String("reason", redact.Error(err)))
			api.HandleError(w, r, apperr.Unauthorized().Wrap(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

var (
	errMissingToken  = errors.New("authorization header has no token")
	errInvalidToken  = errors.New("token failed validation")
	errMissingUserID = errors.New("token carries no user id")
)

func (m *AuthMiddleware) resolve(r *http.Request) (*domain.User, error) {
	ctx := r.Context()

	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) < 2 {
		return nil, errMissingToken
	}
	token := parts[1]

	if !m.auth.Validate(ctx, token) {
		return nil, errInvalidToken
	}

	claims, err := m.auth.Decode(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.UserID == 0 {
		return nil, errMissingUserID
	}
	return m.auth.GetUser(ctx, claims.UserID)
}
