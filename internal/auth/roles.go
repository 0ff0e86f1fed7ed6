package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/digital-house/community-service/internal/domain"
	apperrors "github.com/digital-house/community-service/pkg/util/errorutil"
)

// RequireUserType ensures the authenticated user has one of the allowed types.
// Must run after AuthMiddleware.Handle.
func RequireUserType(allowed ...domain.UserType) fiber.Handler {
	allowedSet := make(map[domain.UserType]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.UserType]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireStaff admits moderators and admins.
func RequireStaff() fiber.Handler {
	return RequireUserType(domain.UserTypeModerator, domain.UserTypeAdmin)
}
