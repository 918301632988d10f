package middleware

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/policy"
	"github.com/gofiber/fiber/v2"
)

// RoleRequired must run after SessionRequired.
func RoleRequired(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !policy.RoleAllowed(user.Role, allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You do not have access to this page",
			})
		}
		return c.Next()
	}
}
