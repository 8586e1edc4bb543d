package therapyValidator

import (
	"strings"

	"rauha/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateTherapyRequest is the validated therapy creation payload
type CreateTherapyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"`
}

// CreateTherapy validator middleware
func CreateTherapy() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTherapyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		var errors []middleware.FieldError

		if strings.TrimSpace(reqData.Title) == "" {
			errors = append(errors, middleware.FieldError{Field: "title", Message: "Title is required"})
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors = append(errors, middleware.FieldError{Field: "description", Message: "Description is required"})
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors = append(errors, middleware.FieldError{Field: "category", Message: "Category is required"})
		}
		if reqData.Duration <= 0 {
			errors = append(errors, middleware.FieldError{Field: "duration", Message: "Duration must be a positive number"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTherapy", reqData)
		return c.Next()
	}
}
