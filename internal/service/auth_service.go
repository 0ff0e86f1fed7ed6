package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/config"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/events"
	"github.com/digital-house/community-service/internal/repository"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

var errInvalidCredentials = apperrors.NewUnauthorized("invalid email or password")

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
	now        func() time.Time
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is the result of a successful register or login.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger.Named("auth"),
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret,
			time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute,
			time.Duration(cfg.RememberMeTTLHours)*time.Hour),
		bcryptCost: cfg.BcryptCost,
		resetTTL:   time.Duration(cfg.PasswordResetTTLMinutes) * time.Minute,
		now:        time.Now,
	}
}

// TokenManager exposes the token manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Register creates a member account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	email := normalizeEmail(input.Email)
	fields := map[string]any{}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		fields["email"] = "must be a valid email address"
	}
	if len(input.Password) < auth.MinPasswordLength {
		fields["password"] = auth.ErrWeakPassword.Error()
	}
	if strings.TrimSpace(input.FirstName) == "" {
		fields["firstName"] = "required"
	}
	if strings.TrimSpace(input.LastName) == "" {
		fields["lastName"] = "required"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("invalid registration", fields)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		UserType:     domain.UserTypeMember,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))

	return s.issue(user, false)
}

// Login authenticates by email and password. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errInvalidCredentials
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errInvalidCredentials
	}
	return s.issue(user, rememberMe)
}

// RequestPasswordReset issues a reset token when the email belongs to an account. It reports
// success either way so callers cannot probe for registered addresses.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.NewValidationError("invalid request", map[string]any{"email": "required"})
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return apperrors.MapError(err)
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return apperrors.MapError(err)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      events.EventPasswordResetRequested,
		SubjectID: user.ID,
		ActorID:   user.ID,
		Payload: events.PasswordResetRequestedPayload{
			Email:     user.Email,
			Token:     token.Token,
			ExpiresAt: token.ExpiresAt,
		},
	})
	return nil
}

// ValidateResetToken reports whether the token can still be redeemed.
func (s *AuthService) ValidateResetToken(ctx context.Context, tokenStr string) (bool, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return false, nil
	}
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.MapError(err)
	}
	return token.Usable(s.now()), nil
}

// ResetPassword redeems a single-use token and sets a new password.
func (s *AuthService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	invalid := apperrors.NewValidationError("invalid or expired reset token", nil)
	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("invalid request", map[string]any{"password": auth.ErrWeakPassword.Error()})
	}
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invalid
		}
		return apperrors.MapError(err)
	}
	if !token.Usable(s.now()) {
		return invalid
	}

	// consume first so two concurrent redemptions cannot both succeed
	if err := s.resets.MarkUsed(ctx, token.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invalid
		}
		return apperrors.MapError(err)
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return s.setPassword(ctx, user, newPassword)
}

// ChangePassword verifies the current password before updating to the new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("current password is incorrect", nil)
	}
	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("invalid request", map[string]any{"newPassword": auth.ErrWeakPassword.Error()})
	}
	return s.setPassword(ctx, user, newPassword)
}

func (s *AuthService) setPassword(ctx context.Context, user *domain.User, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	s.logger.Info("password updated", zap.String("user_id", user.ID))
	return nil
}

func (s *AuthService) issue(user *domain.User, remember bool) (*Session, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.UserType, remember)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{User: user, Token: token, ExpiresAt: exp}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
