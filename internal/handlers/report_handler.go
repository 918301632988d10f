package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/policy"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	store *store.Store
}

func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// List returns every report, newest first. ?status= narrows by status and
// ?mine=true to the reports the caller created.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	status := models.ReportStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return badRequest(c, &dto.ErrorResponse{Error: true, Message: "Unknown report status"})
	}
	mine := c.QueryBool("mine", false)

	reports := h.store.Reports(func(r models.Report) bool {
		if status != "" && r.Status != status {
			return false
		}
		return !mine || r.CreatedBy == user.ID
	})
	return c.JSON(dto.NewReportList(reports, h.store.UserName))
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	report, ok := h.store.GetReportByID(c.Params("id"))
	if !ok {
		return notFound(c, "Report not found")
	}
	return c.JSON(dto.NewReportResponse(report, h.store.UserName))
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CreateReportRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	if resp := h.checkAssignee(req.AssignedTo); resp != nil {
		return badRequest(c, resp)
	}

	report := h.store.AddReport(models.NewReport{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   user.ID,
		AssignedTo:  req.AssignedTo,
	})
	slog.Info("report created", "user_id", user.ID, "action", "report.create", "report_id", report.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.NewReportResponse(report, h.store.UserName))
}

func (h *ReportHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.UpdateReportRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	if req.AssignedTo != nil {
		if resp := h.checkAssignee(*req.AssignedTo); resp != nil {
			return badRequest(c, resp)
		}
	}

	report, ok := h.store.UpdateReport(c.Params("id"), req.ToPatch())
	if !ok {
		return notFound(c, "Report not found")
	}
	slog.Info("report updated", "user_id", user.ID, "action", "report.update", "report_id", report.ID, "status", report.Status)
	return c.JSON(dto.NewReportResponse(report, h.store.UserName))
}

// checkAssignee accepts an empty id (unassigned) or an assignable user.
func (h *ReportHandler) checkAssignee(id string) *dto.ErrorResponse {
	if id == "" {
		return nil
	}
	u, ok := h.store.FindUser(id)
	if !ok || !policy.CanBeAssigned(u.Role) {
		return &dto.ErrorResponse{
			Error: true, Message: "Validation failed",
			Fields: map[string]string{"AssignedTo": "Must be a staff or admin user"},
		}
	}
	return nil
}
