// Package handlers contains the Fiber HTTP handlers. Handlers parse input,
// call a service and translate domain errors to HTTP statuses; unexpected
// errors are logged and collapsed to a generic 500.
package handlers

import (
	"errors"
	"log"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RespondError maps a service error onto the HTTP response.
func RespondError(c *fiber.Ctx, err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "VALIDATION_ERROR", "EMAIL_TAKEN":
			return utils.BadRequest(c, domainErr.Message)
		case "INVALID_CREDENTIALS":
			return utils.Unauthorized(c, domainErr.Message)
		case "ROLE_MISMATCH":
			return utils.Forbidden(c, domainErr.Message)
		case "USER_NOT_FOUND", "FORM_NOT_FOUND", "CONNECTION_NOT_FOUND":
			return utils.NotFound(c, domainErr.Message)
		case "FORM_ALREADY_DECIDED", "CONNECTION_ALREADY_DECIDED",
			"CONNECTION_EXISTS", "SELF_CONNECTION":
			return utils.Conflict(c, domainErr.Message)
		}
	}

	log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return utils.InternalError(c, "internal server error")
}
