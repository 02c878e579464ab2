package handlers

import (
	"strconv"

	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/services/form"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type FormHandler struct {
	formService form.Service
}

func NewFormHandler(formService form.Service) *FormHandler {
	return &FormHandler{formService: formService}
}

// Submit accepts the matrimonial form, as JSON or multipart with an optional
// profile_photo part.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input models.FormInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	photo, err := middleware.SaveProfilePhoto(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	submitted, err := h.formService.Submit(claims.UserID, &input, photo)
	if err != nil {
		return RespondError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message": "Form submitted successfully",
		"form":    submitted,
	})
}

// List returns the authenticated user's forms.
func (h *FormHandler) List(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	forms, err := h.formService.ListByUser(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, forms)
}

// Get returns one form by id.
func (h *FormHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid form id")
	}

	f, err := h.formService.GetByID(uint(id))
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, f)
}

// Status returns the quick submission/approval projection.
func (h *FormHandler) Status(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	view, err := h.formService.Status(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, view)
}
