package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newsdeskapp/newsdesk-server/internal/auth"
	"github.com/newsdeskapp/newsdesk-server/internal/domain"
	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/id"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// AuthService handles registration, login, and profile lookups.
// Tokens are stateless: once issued they stay valid until expiry, with no
// revocation list consulted anywhere.
type AuthService struct {
	store        *store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(s *store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        s,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account and signs the user straight in.
// A duplicate email is reported as a conflict.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", formatValidationError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return "", fmt.Errorf("generate user ID: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if domainerrors.Is(err, store.ErrEmailExists) {
			return "", domainerrors.Conflict("user already exists")
		}
		return "", domainerrors.StoreUnavailable(err)
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return token, nil
}

// Login verifies credentials and returns a fresh access token.
// Unknown email and wrong password produce the same answer, so the
// endpoint can't be used to probe which addresses have accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", formatValidationError(err)
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if domainerrors.Is(err, store.ErrUserNotFound) {
			return "", domainerrors.InvalidCredentials("invalid credentials")
		}
		return "", domainerrors.StoreUnavailable(err)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domainerrors.InvalidCredentials("invalid credentials")
	}

	user.LastLoginAt = time.Now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		s.logger.Warn("failed to record login time", "user_id", user.ID, "error", err)
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Profile returns the caller's identity with secret fields stripped.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if domainerrors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.StoreUnavailable(err)
	}

	profile := user.Profile()
	return &profile, nil
}
