package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the bearer token payload.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the claims belong to an admin account.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
