package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/digital-house/community-service/internal/api/dto"
	"github.com/digital-house/community-service/internal/auth"
	"github.com/digital-house/community-service/internal/domain"
	"github.com/digital-house/community-service/internal/service"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

const forgotPasswordMessage = "If an account exists for that email, a reset link has been sent"

// AuthHandler exposes account endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: authService, cookieSecure: cookieSecure}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	session, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": authResponse(session)})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	session, err := h.auth.Login(c.UserContext(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	return c.JSON(fiber.Map{"data": authResponse(session)})
}

// Logout handles POST /auth/logout. Tokens are stateless, so only the cookie is cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.setSessionCookie(c, "", time.Unix(0, 0))
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// CurrentUser handles GET /auth/user.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.RequestPasswordReset(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": forgotPasswordMessage})
}

// ValidateResetToken handles GET /auth/validate-reset-token.
func (h *AuthHandler) ValidateResetToken(c *fiber.Ctx) error {
	valid, err := h.auth.ValidateResetToken(c.UserContext(), c.Query("token"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ValidateResetTokenResponse{Valid: valid}})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password has been reset"})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.UserContext(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func authResponse(session *service.Session) dto.AuthResponse {
	return dto.AuthResponse{
		User:      userResponse(session.User),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		Location:        user.Location,
		UserType:        string(user.UserType),
		CreatedAt:       user.CreatedAt,
	}
}
