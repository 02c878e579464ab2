package handlers

import (
	"kalyanamaalai/internal/middleware"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/services/auth"
	"kalyanamaalai/internal/utils"
	"kalyanamaalai/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a user account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Registration(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	user, err := h.authService.Register(&input)
	if err != nil {
		return RespondError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"message": "Registration successful",
		"user":    user.Sanitized(),
	})
}

// Login authenticates a regular user.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, models.RoleUser)
}

// AdminLogin authenticates an admin account.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, models.RoleAdmin)
}

func (h *AuthHandler) login(c *fiber.Ctx, expectedRole models.Role) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "email and password are required")
	}

	user, token, err := h.authService.Login(input.Email, input.Password, expectedRole)
	if err != nil {
		return RespondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message": "Login successful",
		"token":   token,
		"role":    user.Role,
		"user":    user.Sanitized(),
	})
}

// Me returns the authenticated account's sanitized projection.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "unauthorized")
	}

	user, err := h.authService.GetUserByID(claims.UserID)
	if err != nil {
		return RespondError(c, err)
	}
	return utils.Success(c, user.Sanitized())
}
