package mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// mockTokenPrefix marks tokens issued by MockTokenService's default Sign.
const mockTokenPrefix = "mock-token-"

// MockTokenService implements auth.TokenService for testing.
//
// Without function fields set, Sign issues "mock-token-<userID>" and Decode
// accepts exactly those tokens, so a token round-trips through the mock the
// same way it would through the real service.
type MockTokenService struct {
	SignFn     func(ctx context.Context, user *domain.User) (string, error)
	ValidateFn func(ctx context.Context, token string) bool
	DecodeFn   func(ctx context.Context, token string) (*auth.Claims, error)

	// Call tracking for verification
	mu          sync.Mutex
	SignCalls   int
	DecodeCalls int
}

var _ auth.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock with the default round-trip behavior.
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Sign implements auth.TokenService
func (m *MockTokenService) Sign(ctx context.Context, user *domain.User) (string, error) {
	m.mu.Lock()
	m.SignCalls++
	m.mu.Unlock()

	if m.SignFn != nil {
		return m.SignFn(ctx, user)
	}
	return mockTokenPrefix + strconv.FormatInt(user.ID, 10), nil
}

// Validate implements auth.TokenService
func (m *MockTokenService) Validate(ctx context.Context, token string) bool {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}
	_, err := m.Decode(ctx, token)
	return err == nil
}

// Decode implements auth.TokenService
func (m *MockTokenService) Decode(ctx context.Context, token string) (*auth.Claims, error) {
	m.mu.Lock()
	m.DecodeCalls++
	m.mu.Unlock()

	if m.DecodeFn != nil {
		return m.DecodeFn(ctx, token)
	}
	raw, ok := strings.CutPrefix(token, mockTokenPrefix)
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	now := time.Now()
	return &auth.Claims{
		UserID:    id,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		ID:        raw,
	}, nil
}
