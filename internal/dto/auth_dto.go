package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type SessionResponse struct {
	IsAuthenticated bool          `json:"is_authenticated"`
	User            *UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}

func NewSessionResponse(s models.Session) SessionResponse {
	resp := SessionResponse{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := NewUserResponse(*s.User)
		resp.User = &u
	}
	return resp
}
