package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/forms"
	"Backend-FormReview/src/services/review"
	"Backend-FormReview/src/services/scoring"
	"Backend-FormReview/src/services/submission"
)

// Error codes returned next to the HTTP status so clients can branch without parsing messages.
const (
	CodeValidation    = "VALIDATION_FAILED"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONCURRENCY_CONFLICT"
	CodeIncomplete    = "INCOMPLETE_SUBMISSION"
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeIntegrity     = "INTEGRITY_FAILURE"
	CodeInternal      = "INTERNAL_ERROR"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps a service error onto its HTTP status and code.
func HandleServiceError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("[http] ❌ %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: err.Error(),
		Code:    code,
	})
}

func classify(err error) (int, string) {
	var cfgErr *scoring.ConfigurationError
	switch {
	case errors.Is(err, review.ErrConcurrencyConflict):
		return fiber.StatusConflict, CodeConflict
	case errors.Is(err, review.ErrIncompleteSubmission):
		return fiber.StatusUnprocessableEntity, CodeIncomplete
	case errors.Is(err, review.ErrValidation):
		return fiber.StatusBadRequest, CodeValidation
	case errors.As(err, &cfgErr):
		return fiber.StatusUnprocessableEntity, CodeConfiguration
	case errors.Is(err, forms.ErrFormNotFound),
		errors.Is(err, forms.ErrFieldNotFound),
		errors.Is(err, submission.ErrSubmissionNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, review.ErrIntegrity):
		return fiber.StatusInternalServerError, CodeIntegrity
	}
	return fiber.StatusInternalServerError, CodeInternal
}
