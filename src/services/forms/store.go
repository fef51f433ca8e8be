package forms

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
)

var (
	ErrFormNotFound  = errors.New("form not found")
	ErrFieldNotFound = errors.New("scoring field not found")
)

// Store persists form definitions.
type Store interface {
	Create(ctx context.Context, form *models.Form) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	UpdateFieldWeight(ctx context.Context, id primitive.ObjectID, fieldID string, weight int) error
}
