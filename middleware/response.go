package middleware

import "github.com/gofiber/fiber/v2"

// FieldError describes a single failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse writes a JSON error body of the form {message}
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse writes a 400 with the list of failed fields
func ValidationErrorResponse(c *fiber.Ctx, errors []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errors,
	})
}
