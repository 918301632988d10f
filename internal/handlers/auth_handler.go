package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	store       *store.Store
}

func NewAuthHandler(authService *services.AuthService, s *store.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.authService.Logout()
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.NewSessionResponse(h.store.Session()))
}
