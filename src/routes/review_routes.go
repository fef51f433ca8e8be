package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/controllers"
	"Backend-FormReview/src/middleware"
)

func ReviewRoutes(router fiber.Router, ctrl *controllers.SubmissionController) {
	submissions := router.Group("/submissions")

	submissions.Get("/:id/actions", ctrl.GetAvailableActions)
	submissions.Post("/:id/review", middleware.AuthJWT, ctrl.ReviewSubmission)
}
