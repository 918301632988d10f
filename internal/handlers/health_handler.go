package handlers

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// Pinger checks that the snapshot backend is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler accepts a nil ping for backends with nothing to ping.
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	storageStatus := "ok"
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			storageStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   storageStatus,
	})
}
