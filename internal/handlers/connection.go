package handlers

import (
	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/services/connection"
	"kalyanamaalai/internal/utils"
	"kalyanamaalai/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ConnectionHandler struct {
	connService connection.Service
}

func NewConnectionHandler(connService connection.Service) *ConnectionHandler {
	return &ConnectionHandler{connService: connService}
}

// Connect sends a connection request to another user.
func (h *ConnectionHandler) Connect(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input struct {
		ReceiverID uint `json:"receiver_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Connection(input.ReceiverID)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	conn, err := h.connService.SendRequest(claims.UserID, input.ReceiverID)
	if err != nil {
		return RespondError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message":    "Connection request sent. Waiting for admin approval.",
		"connection": conn,
	})
}

// ApprovedProfiles lists browsable approved profiles.
func (h *ConnectionHandler) ApprovedProfiles(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	profiles, err := h.connService.ApprovedProfiles(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, profiles)
}

// ApprovedMatches lists the user's approved connections.
func (h *ConnectionHandler) ApprovedMatches(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	matches, err := h.connService.ApprovedMatches(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, matches)
}
