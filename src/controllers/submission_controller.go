package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/utils"
)

type SubmissionService interface {
	Create(ctx context.Context, req models.CreateSubmissionRequest) (*models.FormSubmission, error)
	UpdateResponses(ctx context.Context, id primitive.ObjectID, responses map[string]interface{}) (*models.FormSubmission, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, error)
	ListByForm(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error)
	Review(ctx context.Context, id primitive.ObjectID, reviewer string, req models.ReviewRequest) (*models.ReviewResult, error)
	Completion(ctx context.Context, id primitive.ObjectID) (*models.CompletionResponse, error)
	Suggestion(ctx context.Context, id primitive.ObjectID) (*models.ApprovalSuggestion, error)
	AvailableActions(ctx context.Context, id primitive.ObjectID, hasApprovalType bool) ([]models.ActionAvailability, error)
	Activity(ctx context.Context, id primitive.ObjectID) ([]models.ReviewActivity, error)
}

type SubmissionController struct {
	svc SubmissionService
}

func NewSubmissionController(svc SubmissionService) *SubmissionController {
	return &SubmissionController{svc: svc}
}

// CreateSubmission godoc
// @Summary      Submit a form
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSubmissionRequest true "Submission"
// @Success      201  {object}  models.FormSubmission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions [post]
func (h *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var req models.CreateSubmissionRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleServiceError(c, err)
	}
	sub, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GetSubmission godoc
// @Summary      Get a submission by ID
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.FormSubmission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func (h *SubmissionController) GetSubmission(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	sub, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(sub)
}

// UpdateResponses godoc
// @Summary      Replace a submission's responses
// @Description  Responses can change while the submission is submitted or under review. The score is recomputed.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id   path  string                         true  "Submission ID"
// @Param        body body  models.UpdateResponsesRequest  true  "Responses"
// @Success      200  {object}  models.FormSubmission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /submissions/{id}/responses [put]
func (h *SubmissionController) UpdateResponses(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	var req models.UpdateResponsesRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleServiceError(c, err)
	}
	sub, err := h.svc.UpdateResponses(c.UserContext(), id, req.Responses)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(sub)
}

// GetSubmissionsByForm godoc
// @Summary      List a form's submissions
// @Tags         submissions
// @Produce      json
// @Param        formId  path   string  true   "Form ID"
// @Param        status  query  string  false  "Filter by status (submitted, under_review, approved, rejected)"
// @Param        page    query  int     false  "Page number" default(1)
// @Param        limit   query  int     false  "Number of items per page" default(10)
// @Param        order   query  string  false  "Sort order by creation time (asc or desc)" default(desc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/submissions [get]
func (h *SubmissionController) GetSubmissionsByForm(c *fiber.Ctx) error {
	formID, err := objectIDParam(c, "formId")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	page, err := h.svc.ListByForm(c.UserContext(), formID, params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(page)
}

// GetCompletion godoc
// @Summary      Completion of the required fields
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.CompletionResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/completion [get]
func (h *SubmissionController) GetCompletion(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	out, err := h.svc.Completion(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(out)
}

// GetSuggestion godoc
// @Summary      Suggested approval type
// @Description  Advisory only; it never changes the submission.
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.ApprovalSuggestion
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/suggestion [get]
func (h *SubmissionController) GetSuggestion(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	out, err := h.svc.Suggestion(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(out)
}

// GetActivity godoc
// @Summary      Review activity log, oldest first
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {array}   models.ReviewActivity
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/activity [get]
func (h *SubmissionController) GetActivity(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	out, err := h.svc.Activity(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(out)
}
