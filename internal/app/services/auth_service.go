package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
	"github.com/mgdelacruz/regisys/internal/pkg/auth"
)

// UserStore is the persistence contract the auth service depends on.
// *repositories.UserRepository satisfies it; tests substitute a stub.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	CreateManual(ctx context.Context, user *models.User) error
	CreateGoogle(ctx context.Context, user *models.User) error
}

// AuthResult is a terminal authenticated outcome: who the user is plus the
// session token the client presents on subsequent requests.
type AuthResult struct {
	FullName string
	Role     models.Role
	Token    string
}

// AuthService resolves login attempts and registrations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	LoginWithGoogle(ctx context.Context, rawIDToken string) (*AuthResult, error)
	Register(ctx context.Context, fullName, username, password, role string) error
}

type authService struct {
	users    UserStore
	verifier auth.IdentityVerifier
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, verifier auth.IdentityVerifier, jwt *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		users:    users,
		verifier: verifier,
		jwt:      jwt,
		logger:   logger,
	}
}

// issueSession signs a session token for an authenticated account
func (s *authService) issueSession(user *models.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	return &AuthResult{
		FullName: user.FullName,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// Login resolves a manual username/password attempt. An absent account and a
// password mismatch are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// Google-only accounts have no password and cannot log in manually
	if user.Password == "" || !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", username).Str("role", string(user.Role)).Msg("Manual login")
	return s.issueSession(user)
}

// LoginWithGoogle resolves a federated attempt. The verifier has already
// checked the token against Google; a never-seen subject id auto-provisions a
// student account, an existing one keeps whatever role an administrator has
// given it since.
func (s *authService) LoginWithGoogle(ctx context.Context, rawIDToken string) (*AuthResult, error) {
	identity, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Google token verification failed")
		return nil, apperrors.ErrGoogleVerification
	}

	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}

		user = &models.User{
			FullName: identity.Name,
			Email:    identity.Email,
			GoogleID: identity.Subject,
			Role:     models.RoleStudent,
		}
		if err := s.users.CreateGoogle(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info().Str("email", identity.Email).Msg("Provisioned Google account")
	}

	return s.issueSession(user)
}

// Register creates a manual account. The requested role is whitelisted
// against the fixed set, anything else becomes student.
func (s *authService) Register(ctx context.Context, fullName, username, password, role string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName: fullName,
		Username: username,
		Password: hash,
		Role:     models.NormalizeRole(role),
	}

	if err := s.users.CreateManual(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Str("role", string(user.Role)).Msg("Account registered")
	return nil
}
