package submission

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Store persists submissions. Writes that touch an existing submission are
// conditional on the version the caller read.
type Store interface {
	Insert(ctx context.Context, sub *models.FormSubmission) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, error)
	ListByForm(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) ([]models.FormSubmission, int64, error)
	// UpdateResponses replaces responses and score and bumps the revision, not the version.
	// It matches only the version and revision the caller read.
	UpdateResponses(ctx context.Context, id primitive.ObjectID, responses map[string]interface{}, score *models.Score, version, revision int64) error
	// SaveTransition writes the result of a review transition and appends entry to the log.
	// It matches only the version the reviewer read and next.Revision, so a response
	// edit that landed in between turns the save into a conflict. The score is never
	// replaced here; only its review stamps are written.
	SaveTransition(ctx context.Context, next *models.FormSubmission, entry models.ReviewActivity, expectedVersion int64) error
}
