package handlers

import (
	"strconv"

	"kalyanamaalai/internal/services/admin"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService admin.Service
}

func NewAdminHandler(adminService admin.Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) PendingForms(c *fiber.Ctx) error {
	forms, err := h.adminService.PendingForms()
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, forms)
}

func (h *AdminHandler) ApproveForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid form id")
	}
	if err := h.adminService.ApproveForm(id); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Form approved successfully"})
}

func (h *AdminHandler) RejectForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid form id")
	}
	if err := h.adminService.RejectForm(id); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Form rejected successfully"})
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.adminService.Users()
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, users)
}

func (h *AdminHandler) UserDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}
	detail, err := h.adminService.UserDetails(id)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, detail)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}
	if err := h.adminService.DeleteUser(id); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "User deleted successfully"})
}

func (h *AdminHandler) PendingConnections(c *fiber.Ctx) error {
	connections, err := h.adminService.PendingConnections()
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, connections)
}

func (h *AdminHandler) ApproveConnection(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid connection id")
	}
	if err := h.adminService.ApproveConnection(id); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Connection approved. Notifications sent."})
}

func (h *AdminHandler) RejectConnection(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid connection id")
	}
	if err := h.adminService.RejectConnection(id); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Connection rejected successfully"})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
