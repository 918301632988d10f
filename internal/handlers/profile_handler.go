package handlers

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}

	user, ok := h.store.UpdateProfile(req.ToPatch())
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(dto.NewUserResponse(user))
}
