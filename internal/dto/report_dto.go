package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
)

type CreateReportRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	AssignedTo  string `json:"assigned_to"`
}

type UpdateReportRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed rejected"`
	AssignedTo  *string `json:"assigned_to"`
}

func (r *UpdateReportRequest) ToPatch() models.ReportPatch {
	p := models.ReportPatch{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
	}
	if r.Status != nil {
		status := models.ReportStatus(*r.Status)
		p.Status = &status
	}
	return p
}

// ReportResponse is a report with the creator and assignee resolved to names.
type ReportResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	CreatedBy      string     `json:"created_by"`
	CreatedByName  string     `json:"created_by_name"`
	AssignedTo     string     `json:"assigned_to,omitempty"`
	AssignedToName string     `json:"assigned_to_name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func NewReportResponse(r models.Report, nameOf func(id string) string) ReportResponse {
	return ReportResponse{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         string(r.Status),
		CreatedBy:      r.CreatedBy,
		CreatedByName:  nameOf(r.CreatedBy),
		AssignedTo:     r.AssignedTo,
		AssignedToName: nameOf(r.AssignedTo),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func NewReportList(reports []models.Report, nameOf func(id string) string) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, NewReportResponse(r, nameOf))
	}
	return out
}
