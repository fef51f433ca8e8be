package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/middleware"
	"Backend-FormReview/src/models"
	"Backend-FormReview/src/utils"
)

// ReviewSubmission godoc
// @Summary      Apply a reviewer action
// @Description  Approve, reject, request more info, resend or send a reminder. expectedVersion must match the submission's current version.
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string                true  "Submission ID"
// @Param        body body  models.ReviewRequest  true  "Review action"
// @Success      200  {object}  models.ReviewResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /submissions/{id}/review [post]
func (h *SubmissionController) ReviewSubmission(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	var req models.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	result, err := h.svc.Review(c.UserContext(), id, middleware.Reviewer(c), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetAvailableActions godoc
// @Summary      Which reviewer actions are allowed now
// @Tags         review
// @Produce      json
// @Param        id            path   string  true   "Submission ID"
// @Param        approvalType  query  string  false  "Approval type the reviewer has picked (fully, partially)"
// @Success      200  {array}   models.ActionAvailability
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/actions [get]
func (h *SubmissionController) GetAvailableActions(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	hasApprovalType := models.ValidateApprovalType(models.ApprovalType(c.Query("approvalType"))) == nil

	out, err := h.svc.AvailableActions(c.UserContext(), id, hasApprovalType)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(out)
}
