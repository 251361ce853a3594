package auth

import (
	"context"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	// Sign creates a signed token embedding the user's id, email and username.
	Sign(ctx context.Context, user *domain.User) (string, error)

	// Validate reports whether the token has a valid signature and has not expired.
	Validate(ctx context.Context, tokenString string) bool

	// Decode verifies the token and returns its claims.
	// Returns ErrInvalidToken, ErrExpiredToken or ErrTokenNotYetValid on failure.
	Decode(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a token.
type Claims struct {
	UserID    int64
	Email     string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	// ID is the unique token id (jti).
	ID string
}
