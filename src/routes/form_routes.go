package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/controllers"
)

func FormRoutes(router fiber.Router, forms *controllers.FormController, submissions *controllers.SubmissionController) {
	formRoutes := router.Group("/forms")

	formRoutes.Post("/", forms.CreateForm)
	formRoutes.Get("/:id", forms.GetForm)
	formRoutes.Get("/:id/impacts", forms.GetImpacts)
	formRoutes.Patch("/:id/fields/:fieldId/weight", forms.UpdateFieldWeight)

	formRoutes.Get("/:formId/submissions", submissions.GetSubmissionsByForm) // GET /forms/:formId/submissions?status=
}
