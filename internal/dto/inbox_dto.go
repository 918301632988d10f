package dto

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type FAQListResponse struct {
	FAQs []models.FAQ `json:"faqs"`
}
