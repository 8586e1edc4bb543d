package progressRoutes

import (
	progressController "rauha/controllers/progress"
	"rauha/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up step completion and statistics routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress")

	progressGroup.Post("/complete", middleware.Protected, progressController.CompleteStep)
	progressGroup.Get("/user/:userId", middleware.Protected, progressController.GetUserProgress)

	progressGroup.Get("/therapy/:therapyId",
		middleware.Protected,
		middleware.RequireTherapist("Only therapists can view therapy statistics"),
		progressController.GetTherapyStats,
	)
}
