package middleware

import (
	"strings"

	"menugate/internal/core/domain"
	"menugate/internal/pkg/response"
	"menugate/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by Authenticated for downstream handlers.
const (
	LocalUserEmail = "userEmail"
	LocalRoleID    = "roleId"
)

// Authenticated decodes the bearer token from the Authorization header and
// attaches the user's email and role to the request context. Only the
// second whitespace-delimited segment of the header is read.
func Authenticated(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[1] == "" {
			return response.Unauthorized(c)
		}

		claims, err := tokens.DecodeAccessToken(parts[1])
		if err != nil {
			return response.Unauthorized(c)
		}

		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalRoleID, claims.RoleID)

		return c.Next()
	}
}

// RequireRole rejects any request whose authenticated role is not exactly
// the required one. Gates never consult persistence.
func RequireRole(roleID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals(LocalRoleID).(uint)
		if !ok {
			return response.Unauthorized(c)
		}
		if current != roleID {
			return response.Forbidden(c)
		}
		return c.Next()
	}
}

// SuperUser allows only role 1
func SuperUser() fiber.Handler {
	return RequireRole(domain.RoleSuperUser)
}

// AdminRole allows only role 2
func AdminRole() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// BasicUser allows only role 3
func BasicUser() fiber.Handler {
	return RequireRole(domain.RoleBasicUser)
}
