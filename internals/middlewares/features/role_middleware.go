// file: internals/middlewares/features/role_middleware.go
package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"minhaescola_backend/internals/constants"
)

// IsAdministrative gates the /api/a group: owner, admin and staff pass.
func IsAdministrative() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		if !constants.IsAdministrative(strings.ToLower(strings.TrimSpace(role))) {
			return fiber.NewError(fiber.StatusForbidden, "Administrative role required")
		}
		return c.Next()
	}
}

// RequireRoles allows any of the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := strings.ToLower(strings.TrimSpace(func() string {
			v, _ := c.Locals("userRole").(string)
			return v
		}()))
		for _, r := range roles {
			if role == strings.ToLower(r) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
	}
}
