package middleware

import (
	"rauha/models"

	"github.com/gofiber/fiber/v2"
)

// RequireTherapist returns a middleware that rejects non-therapist callers
// with the given authorization error message
func RequireTherapist(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
		}

		if user.Role != models.RoleTherapist {
			return ErrorResponse(c, fiber.StatusForbidden, message)
		}

		return c.Next()
	}
}
