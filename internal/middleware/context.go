package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionUserKey = "session_user"

// CurrentUser returns the user SessionRequired attached to the request.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(sessionUserKey).(models.User)
	return user, ok
}

// tokenClaims extracts sub and jti from the JWT stored by jwtware.
func tokenClaims(c *fiber.Ctx) (string, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", "", errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("missing sub claim")
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", "", errors.New("missing jti claim")
	}
	return sub, jti, nil
}
