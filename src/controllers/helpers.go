package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/services/review"
	"Backend-FormReview/src/utils"
)

// objectIDParam reads a hex ObjectID path parameter.
func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid %s %q", review.ErrValidation, name, c.Params(name))
	}
	return id, nil
}

// parseBody decodes and validates a JSON body.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: invalid input: %s", review.ErrValidation, err.Error())
	}
	if err := utils.ValidateStruct(out); err != nil {
		return fmt.Errorf("%w: %s", review.ErrValidation, err.Error())
	}
	return nil
}
