package handlers

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FAQHandler struct {
	faqs *services.FAQService
}

func NewFAQHandler(faqs *services.FAQService) *FAQHandler {
	return &FAQHandler{faqs: faqs}
}

// List is public; it backs the help section of the login page.
func (h *FAQHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.FAQListResponse{FAQs: h.faqs.Search(c.Query("q"))})
}
