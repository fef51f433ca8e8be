package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/controllers"
)

func SubmissionRoutes(router fiber.Router, ctrl *controllers.SubmissionController) {
	submissions := router.Group("/submissions")

	submissions.Post("/", ctrl.CreateSubmission)
	submissions.Get("/:id", ctrl.GetSubmission)
	submissions.Put("/:id/responses", ctrl.UpdateResponses)

	submissions.Get("/:id/completion", ctrl.GetCompletion)
	submissions.Get("/:id/suggestion", ctrl.GetSuggestion)
	submissions.Get("/:id/activity", ctrl.GetActivity)
}
