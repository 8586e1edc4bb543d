package therapyRoutes

import (
	therapyController "rauha/controllers/therapy"
	"rauha/middleware"
	therapyValidator "rauha/validators/therapy"

	"github.com/gofiber/fiber/v2"
)

// SetupTherapyRoutes sets up therapy listing and creation routes
func SetupTherapyRoutes(app *fiber.App) {
	therapyGroup := app.Group("/api/therapies")

	therapyGroup.Get("/", therapyController.GetTherapies)
	therapyGroup.Get("/:id", therapyController.GetTherapyByID)
	therapyGroup.Get("/:id/modules", therapyController.GetTherapyModules)

	therapyGroup.Post("/",
		middleware.Protected,
		middleware.RequireTherapist("Only therapists can create therapies"),
		therapyValidator.CreateTherapy(),
		therapyController.CreateTherapy,
	)
}
