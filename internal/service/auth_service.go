package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AuthService provides registration, login and token checks.
type AuthService interface {
	// Register creates a user with a hashed password.
	// Returns a Conflict error when the email is already registered.
	Register(ctx context.Context, username, password, email string) (*domain.User, error)

	// Login checks the credentials and returns a signed token.
	// Returns NotFound for an unknown email and UnprocessableEntity
	// ("Invalid Credentials") for a wrong password.
	Login(ctx context.Context, email, password string) (string, error)

	// Validate reports whether token is authentic and unexpired.
	Validate(ctx context.Context, token string) bool

	// Decode returns the claims of a valid token, or an Unauthorized error.
	Decode(ctx context.Context, token string) (*auth.Claims, error)

	// GetUser returns the user with id, or a NotFound error.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type authServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates an AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	log *slog.Logger,
) (AuthService, error) {
	if users == nil {
		return nil, errors.New("users store cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("token service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &authServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: log.With(slog.String("component", "auth_service")),
	}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperr.UnprocessableEntity(err.Error()).Wrap(err)
		}
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, &ServiceError{Operation: "register", Err: err}
	}

	user, err := domain.NewUser(username, email, hashed)
	if err != nil {
		return nil, mapStoreError("register", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			log.Error("failed to create user", slog.String("error", err.Error()))
		}
		return nil, mapStoreError("register", err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown email")
		}
		return "", mapStoreError("login", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login with wrong password", slog.Int64("user_id", user.ID))
			return "", apperr.UnprocessableEntity(MsgInvalidCredentials).Wrap(err)
		}
		log.Error("failed to compare password", slog.String("error", err.Error()))
		return "", &ServiceError{Operation: "login", Err: err}
	}

	token, err := s.tokens.Sign(ctx, user)
	if err != nil {
		return "", &ServiceError{Operation: "login", Err: fmt.Errorf("sign token: %w", err)}
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

func (s *authServiceImpl) Validate(ctx context.Context, token string) bool {
	return s.tokens.Validate(ctx, token)
}

func (s *authServiceImpl) Decode(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokens.Decode(ctx, token)
	if err != nil {
		return nil, apperr.Unauthorized().Wrap(err)
	}
	return claims, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get_user", err)
	}
	return user, nil
}
