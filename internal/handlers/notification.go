package handlers

import (
	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/services/notification"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// List returns the user's notifications, newest first.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	notifications, err := h.notifService.ListByUser(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, notifications)
}

// MarkRead marks every notification of the user as read. Idempotent.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if err := h.notifService.MarkAllRead(claims.UserID); err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "All notifications marked as read."})
}
