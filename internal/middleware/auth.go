package middleware

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// SessionAuthorizer resolves verified token claims to the live session user.
type SessionAuthorizer interface {
	Authorize(sub, jti string) (models.User, error)
}

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// SessionRequired runs after JWTProtected. It rejects tokens that no longer
// match the signed-in session and stores the session user for handlers.
func SessionRequired(auth SessionAuthorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, jti, err := tokenClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := auth.Authorize(sub, jti)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}

		c.Locals(sessionUserKey, user)
		return c.Next()
	}
}

// Protected chains the token check and the session check.
func Protected(cfg *config.Config, auth SessionAuthorizer) []fiber.Handler {
	return []fiber.Handler{JWTProtected(cfg), SessionRequired(auth)}
}
