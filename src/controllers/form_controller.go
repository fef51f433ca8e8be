package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/forms"
	"Backend-FormReview/src/utils"
)

type FormService interface {
	CreateForm(ctx context.Context, form *models.Form) (*models.Form, error)
	GetForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	Impacts(ctx context.Context, id primitive.ObjectID) (*forms.WeightSummary, error)
	UpdateFieldWeight(ctx context.Context, id primitive.ObjectID, fieldID string, weight int) (*forms.WeightSummary, error)
}

type FormController struct {
	svc FormService
}

func NewFormController(svc FormService) *FormController {
	return &FormController{svc: svc}
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Create a form with its fields and scoring configuration
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.Form true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func (h *FormController) CreateForm(c *fiber.Ctx) error {
	var form models.Form
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := h.svc.CreateForm(c.UserContext(), &form)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetForm godoc
// @Summary      Get a form by ID
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (h *FormController) GetForm(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	form, err := h.svc.GetForm(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// GetImpacts godoc
// @Summary      Get field weight impacts
// @Description  Relative share of each scoring field's weight, the total weight and the max achievable score
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  forms.WeightSummary
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /forms/{id}/impacts [get]
func (h *FormController) GetImpacts(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	summary, err := h.svc.Impacts(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(summary)
}

// UpdateFieldWeight godoc
// @Summary      Change a field's weight multiplier
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Form ID"
// @Param        fieldId  path  string                      true  "Field ID"
// @Param        body     body  models.UpdateWeightRequest  true  "New weight (1..5)"
// @Success      200  {object}  forms.WeightSummary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/fields/{fieldId}/weight [patch]
func (h *FormController) UpdateFieldWeight(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	var req models.UpdateWeightRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	summary, err := h.svc.UpdateFieldWeight(c.UserContext(), id, c.Params("fieldId"), req.WeightMultiplier)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(summary)
}
