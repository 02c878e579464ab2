// Package middleware provides the HTTP middleware: bearer token validation
// and role-based route gating.
package middleware

import (
	"strings"

	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	// ClaimsKey is the fiber locals key holding *models.UserClaims.
	ClaimsKey = "claims"
	// UserIDKey is the fiber locals key holding the authenticated user id.
	UserIDKey = "userID"
)

// RequireAuth validates the Authorization bearer token and stores the claims
// in the request locals.
func RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return utils.Unauthorized(c, "invalid or expired token")
	}

	c.Locals(ClaimsKey, claims)
	c.Locals(UserIDKey, claims.UserID)
	return c.Next()
}

// RequireRole gates a route to the given roles. The role set is closed; there
// is no string comparison outside this middleware and the claims type.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return utils.Unauthorized(c, "unauthorized")
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "insufficient permissions")
	}
}

// Claims returns the authenticated claims, or nil outside RequireAuth.
func Claims(c *fiber.Ctx) *models.UserClaims {
	claims, _ := c.Locals(ClaimsKey).(*models.UserClaims)
	return claims
}
