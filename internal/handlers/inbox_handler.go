package handlers

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

// InboxHandler serves notifications and the shared chat room.
type InboxHandler struct {
	store *store.Store
}

func NewInboxHandler(s *store.Store) *InboxHandler {
	return &InboxHandler{store: s}
}

func (h *InboxHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(dto.NotificationListResponse{
		Notifications: h.store.Notifications(),
		UnreadCount:   h.store.UnreadCount(),
	})
}

func (h *InboxHandler) MarkRead(c *fiber.Ctx) error {
	if !h.store.MarkNotificationRead(c.Params("id")) {
		return notFound(c, "Notification not found")
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *InboxHandler) Messages(c *fiber.Ctx) error {
	return c.JSON(h.store.GetChatMessages())
}

func (h *InboxHandler) Send(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.ChatMessageRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}

	msg := h.store.AddChatMessage(models.ChatMessage{
		SenderID:   user.ID,
		SenderName: user.Name,
		Message:    req.Message,
	})
	return c.Status(fiber.StatusCreated).JSON(msg)
}
