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

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewUserList(h.store.GetAllUsers()))
}

func (h *UserHandler) Assignable(c *fiber.Ctx) error {
	return c.JSON(dto.NewUserList(h.store.AssignableUsers()))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CreateUserRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	if !policy.CanManageUser(caller.Role, models.Role(req.Role)) {
		return forbidden(c)
	}

	user := h.store.AddUser(req.ToUser())
	slog.Info("user created", "user_id", caller.ID, "action", "user.create", "target", user.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	id := c.Params("id")
	target, found := h.store.FindUser(id)
	if !found {
		return notFound(c, "User not found")
	}
	if !policy.CanManageUser(caller.Role, target.Role) {
		return forbidden(c)
	}

	var req dto.UpdateUserRequest
	if resp := parseBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	if req.Role != nil && !policy.CanManageUser(caller.Role, models.Role(*req.Role)) {
		return forbidden(c)
	}

	user, ok := h.store.UpdateUser(id, req.ToPatch())
	if !ok {
		return notFound(c, "User not found")
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete answers 204 whether or not the user existed.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	id := c.Params("id")
	if target, found := h.store.FindUser(id); found {
		if !policy.CanManageUser(caller.Role, target.Role) {
			return forbidden(c)
		}
		h.store.DeleteUser(id)
		slog.Info("user deleted", "user_id", caller.ID, "action", "user.delete", "target", id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error: true, Message: "You are not allowed to manage this user",
	})
}
