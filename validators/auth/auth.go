package authValidator

import (
	"regexp"
	"strings"

	"rauha/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// RegisterRequest is the validated registration payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the validated login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		var errors []middleware.FieldError

		if strings.TrimSpace(reqData.Name) == "" {
			errors = append(errors, middleware.FieldError{Field: "name", Message: "Name is required"})
		}
		if !isValidEmail(reqData.Email) {
			errors = append(errors, middleware.FieldError{Field: "email", Message: "Please enter a valid email"})
		}
		if len(reqData.Password) < 6 {
			errors = append(errors, middleware.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		var errors []middleware.FieldError

		if !isValidEmail(reqData.Email) {
			errors = append(errors, middleware.FieldError{Field: "email", Message: "Please enter a valid email"})
		}
		if reqData.Password == "" {
			errors = append(errors, middleware.FieldError{Field: "password", Message: "Password is required"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
