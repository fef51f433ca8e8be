package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/controllers"
)

// Deps holds the services the HTTP layer is built on.
type Deps struct {
	Forms       controllers.FormService
	Submissions controllers.SubmissionService
}

func InitRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	formCtrl := controllers.NewFormController(deps.Forms)
	submissionCtrl := controllers.NewSubmissionController(deps.Submissions)

	FormRoutes(api, formCtrl, submissionCtrl)
	SubmissionRoutes(api, submissionCtrl)
	ReviewRoutes(api, submissionCtrl)

	// health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
