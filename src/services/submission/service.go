package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/activitylog"
	"Backend-FormReview/src/services/completion"
	"Backend-FormReview/src/services/review"
	"Backend-FormReview/src/services/scoring"
	"Backend-FormReview/src/services/suggestion"
)

// FormReader loads the form a submission belongs to.
type FormReader interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

// Notifier is told about activities the submitter should hear about.
type Notifier interface {
	Notify(ctx context.Context, sub *models.FormSubmission, activity models.ReviewActivity) error
}

type Service struct {
	forms    FormReader
	store    Store
	notifier Notifier
}

// NewService wires the submission service. notifier may be nil.
func NewService(forms FormReader, store Store, notifier Notifier) *Service {
	return &Service{forms: forms, store: store, notifier: notifier}
}

// Create takes in a new submission at version 0 with an empty activity log.
func (s *Service) Create(ctx context.Context, req models.CreateSubmissionRequest) (*models.FormSubmission, error) {
	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid form id %q", review.ErrValidation, req.FormID)
	}
	form, err := s.forms.Get(ctx, formID)
	if err != nil {
		return nil, err
	}

	score, err := scoreFor(form, req.Responses)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &models.FormSubmission{
		ID:             primitive.NewObjectID(),
		FormID:         form.ID,
		SubmittedBy:    strings.TrimSpace(req.SubmittedBy),
		SubmitterEmail: strings.TrimSpace(req.SubmitterEmail),
		Responses:      req.Responses,
		Status:         models.StatusSubmitted,
		Score:          score,
		ActivityLog:    []models.ReviewActivity{},
		Version:        0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Insert(ctx, sub); err != nil {
		return nil, err
	}

	log.Printf("[submission] inserted id=%s form=%s completion=%d%%",
		sub.ID.Hex(), form.ID.Hex(), completion.Percentage(form.RequiredFields(), sub.Responses))
	return sub, nil
}

// UpdateResponses replaces the responses and recomputes the score. Review
// stamps on the previous score carry over. The version is left alone.
func (s *Service) UpdateResponses(ctx context.Context, id primitive.ObjectID, responses map[string]interface{}) (*models.FormSubmission, error) {
	sub, form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.StatusSubmitted && sub.Status != models.StatusUnderReview {
		return nil, fmt.Errorf("%w: responses cannot be edited once a submission is %s", review.ErrValidation, sub.Status)
	}

	score, err := scoreFor(form, responses)
	if err != nil {
		return nil, err
	}
	if score != nil && sub.Score != nil {
		score.ReviewedBy = sub.Score.ReviewedBy
		score.ReviewedAt = sub.Score.ReviewedAt
		score.ReviewComments = sub.Score.ReviewComments
	}

	if err := s.store.UpdateResponses(ctx, id, responses, score, sub.Version, sub.Revision); err != nil {
		return nil, err
	}

	sub.Responses = responses
	sub.Score = score
	sub.Revision++
	sub.UpdatedAt = time.Now().UTC()
	log.Printf("[submission] responses updated id=%s", id.Hex())
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, error) {
	return s.store.Get(ctx, id)
}

// ListByForm pages through a form's submissions, optionally filtered by status.
func (s *Service) ListByForm(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()
	if params.Status != "" {
		if err := models.ValidateStatus(models.SubmissionStatus(params.Status)); err != nil {
			return nil, fmt.Errorf("%w: %s", review.ErrValidation, err.Error())
		}
	}
	if _, err := s.forms.Get(ctx, formID); err != nil {
		return nil, err
	}

	subs, total, err := s.store.ListByForm(ctx, formID, params)
	if err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(subs, total, params), nil
}

// Review applies a reviewer action and persists it against the version the
// reviewer saw. Reminder and resend activities are then handed to the notifier;
// a notification failure does not undo the committed transition.
func (s *Service) Review(ctx context.Context, id primitive.ObjectID, reviewer string, req models.ReviewRequest) (*models.ReviewResult, error) {
	sub, form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, entry, err := review.ApplyTransition(sub, form, review.Request{
		Action:          review.Action(req.Action),
		Comments:        req.Comments,
		ReviewedBy:      reviewer,
		Metadata:        req.Metadata,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveTransition(ctx, next, entry, req.ExpectedVersion); err != nil {
		if errors.Is(err, review.ErrConcurrencyConflict) {
			log.Printf("[submission] ⚠️ write conflict id=%s action=%s expected=%d: %v", id.Hex(), req.Action, req.ExpectedVersion, err)
		}
		return nil, err
	}
	log.Printf("[submission] review id=%s action=%s status=%s version=%d by=%s",
		id.Hex(), req.Action, next.Status, next.Version, reviewer)

	if s.notifier != nil && notifies(entry.Action) {
		if err := s.notifier.Notify(ctx, next, entry); err != nil {
			log.Printf("[submission] ❌ notify failed id=%s activity=%s: %v", id.Hex(), entry.ID, err)
		}
	}

	return &models.ReviewResult{Submission: next, Activity: entry}, nil
}

func (s *Service) Completion(ctx context.Context, id primitive.ObjectID) (*models.CompletionResponse, error) {
	sub, form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	required := form.RequiredFields()
	return &models.CompletionResponse{
		SubmissionID: sub.ID,
		Percentage:   completion.Percentage(required, sub.Responses),
		FormComplete: completion.IsFormComplete(sub, form),
		Missing:      completion.Missing(required, sub.Responses),
	}, nil
}

func (s *Service) Suggestion(ctx context.Context, id primitive.ObjectID) (*models.ApprovalSuggestion, error) {
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := suggestion.SuggestApproval(sub.Score)
	return &out, nil
}

// AvailableActions reports, per action, whether the reviewer could take it now.
func (s *Service) AvailableActions(ctx context.Context, id primitive.ObjectID, hasApprovalType bool) ([]models.ActionAvailability, error) {
	sub, form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return review.AvailableActions(sub, form, hasApprovalType), nil
}

// Activity returns the review log oldest first.
func (s *Service) Activity(ctx context.Context, id primitive.ObjectID) ([]models.ReviewActivity, error) {
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return activitylog.Chronological(sub.ActivityLog), nil
}

func (s *Service) load(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, *models.Form, error) {
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	form, err := s.forms.Get(ctx, sub.FormID)
	if err != nil {
		return nil, nil, err
	}
	return sub, form, nil
}

func scoreFor(form *models.Form, responses map[string]interface{}) (*models.Score, error) {
	if !form.Scoring.Enabled {
		return nil, nil
	}
	return scoring.ComputeScore(form.Fields, responses, form.Scoring)
}

func notifies(a models.ActivityAction) bool {
	return a == models.ActivityReminderSent || a == models.ActivityResent
}
