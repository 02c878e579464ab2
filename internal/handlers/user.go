package handlers

import (
	"errors"

	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userRepo repositories.UserRepository
}

func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// Profile returns the authenticated user's profile.
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return RespondError(c, err)
	}
	return utils.Success(c, user.Sanitized())
}

// UpdateProfile updates name and, when a multipart photo is present, the
// profile photo; the replaced photo is removed from disk best-effort.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return RespondError(c, err)
	}

	if name := c.FormValue("name"); name != "" {
		user.Name = name
	}
	if city := c.FormValue("city"); city != "" {
		user.City = city
	}
	if phone := c.FormValue("phone"); phone != "" {
		user.Phone = phone
	}

	photo, err := middleware.SaveProfilePhoto(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	oldPhoto := user.ProfilePhoto
	if photo != "" {
		user.ProfilePhoto = photo
	}

	if err := h.userRepo.Update(user); err != nil {
		return RespondError(c, err)
	}
	if photo != "" && oldPhoto != "" {
		middleware.RemovePhoto(oldPhoto)
	}

	return utils.Success(c, user.Sanitized())
}
