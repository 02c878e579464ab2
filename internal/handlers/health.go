package handlers

import (
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database and reports service health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		return utils.Respond(c, fiber.StatusServiceUnavailable, fiber.Map{"status": "down"})
	}
	return utils.Success(c, fiber.Map{"status": "ok"})
}
