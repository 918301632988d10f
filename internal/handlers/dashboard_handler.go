package handlers

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(h.store.Dashboard(user.Role, user.ID))
}
