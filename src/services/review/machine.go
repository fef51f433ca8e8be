package review

import (
	"fmt"
	"strings"
	"time"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/activitylog"
	"Backend-FormReview/src/services/completion"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// Request carries everything a transition needs from the caller.
type Request struct {
	Action     Action
	Comments   string
	ReviewedBy string
	Metadata   *models.ActivityMetadata
	// ExpectedVersion is the submission version the caller read before deciding.
	ExpectedVersion int64
}

// HasApprovalType reports whether the request names a valid approval type.
func (r Request) HasApprovalType() bool {
	return r.Metadata != nil && r.Metadata.ApprovalType != nil &&
		models.ValidateApprovalType(*r.Metadata.ApprovalType) == nil
}

// CanTransition checks the guards of an action against the submission's current state.
// It returns nil when the action is allowed, otherwise an error naming the reason.
func CanTransition(sub *models.FormSubmission, form *models.Form, action Action, hasApprovalType bool) error {
	if err := checkIntegrity(sub); err != nil {
		return err
	}
	if err := ValidateAction(action); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	incomplete := sub.Status == models.StatusSubmitted && !completion.IsFormComplete(sub, form)

	if action == ActionSendReminder {
		if !incomplete {
			return validationErr("reminders can only be sent while a submitted form is incomplete (status: %s)", sub.Status)
		}
		return nil
	}
	if incomplete {
		pct := completion.Percentage(form.RequiredFields(), sub.Responses)
		return fmt.Errorf("%w: only send_reminder is allowed until all required fields are answered (%d%% complete)", ErrIncompleteSubmission, pct)
	}
	if action == ActionApprove && !hasApprovalType {
		return ErrMissingApprovalType
	}
	return nil
}

// ApplyTransition validates and applies a reviewer action. On success it returns a new
// submission with exactly one more activity and version+1, plus the new activity.
// On failure the input submission is returned untouched and nothing is produced.
func ApplyTransition(sub *models.FormSubmission, form *models.Form, req Request) (*models.FormSubmission, models.ReviewActivity, error) {
	if err := checkIntegrity(sub); err != nil {
		return nil, models.ReviewActivity{}, err
	}
	if req.ExpectedVersion != sub.Version {
		return nil, models.ReviewActivity{}, fmt.Errorf("%w: expected version %d, current version %d", ErrConcurrencyConflict, req.ExpectedVersion, sub.Version)
	}
	if err := validateRequest(req); err != nil {
		return nil, models.ReviewActivity{}, err
	}
	if err := CanTransition(sub, form, req.Action, req.HasApprovalType()); err != nil {
		return nil, models.ReviewActivity{}, err
	}

	rule := rules[req.Action]
	entry := activitylog.NewEntry(rule.records, req.Comments, req.ReviewedBy, req.Metadata, timeNow())
	log, entry, err := activitylog.Append(sub.ActivityLog, entry)
	if err != nil {
		return nil, models.ReviewActivity{}, fmt.Errorf("%w: %s", ErrIntegrity, err.Error())
	}

	next := *sub
	next.Responses = copyResponses(sub.Responses)
	next.ActivityLog = log
	next.Version = sub.Version + 1
	next.UpdatedAt = entry.ReviewedAt

	if !rule.keepStatus {
		next.Status = rule.target
		next.ApprovalType = nil
		if req.Action == ActionApprove {
			t := *req.Metadata.ApprovalType
			next.ApprovalType = &t
		}
	} else if sub.ApprovalType != nil {
		t := *sub.ApprovalType
		next.ApprovalType = &t
	}

	if sub.Score != nil {
		score := sub.Score.Clone()
		at := entry.ReviewedAt
		score.ReviewedBy = entry.ReviewedBy
		score.ReviewedAt = &at
		score.ReviewComments = entry.Comments
		next.Score = score
	}

	return &next, entry, nil
}

// AvailableActions evaluates CanTransition for every action.
func AvailableActions(sub *models.FormSubmission, form *models.Form, hasApprovalType bool) []models.ActionAvailability {
	out := make([]models.ActionAvailability, 0, len(Actions))
	for _, a := range Actions {
		item := models.ActionAvailability{Action: string(a), Allowed: true}
		if err := CanTransition(sub, form, a, hasApprovalType); err != nil {
			item.Allowed = false
			item.Reason = err.Error()
		}
		out = append(out, item)
	}
	return out
}

func validateRequest(req Request) error {
	if err := ValidateAction(req.Action); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if strings.TrimSpace(req.Comments) == "" {
		return validationErr("comments are required for %s", req.Action)
	}
	if strings.TrimSpace(req.ReviewedBy) == "" {
		return validationErr("reviewer is required")
	}
	if m := req.Metadata; m != nil {
		if m.Urgency != "" {
			if err := models.ValidateUrgency(m.Urgency); err != nil {
				return fmt.Errorf("%w: %s", ErrValidation, err.Error())
			}
		}
		if m.ApprovalType != nil {
			if err := models.ValidateApprovalType(*m.ApprovalType); err != nil {
				return fmt.Errorf("%w: %s", ErrValidation, err.Error())
			}
		}
	}
	return nil
}

// checkIntegrity rejects records that could not have been written by this machine.
// An unknown status is surfaced, never coerced to a default.
func checkIntegrity(sub *models.FormSubmission) error {
	if sub == nil {
		return fmt.Errorf("%w: submission is nil", ErrIntegrity)
	}
	if err := models.ValidateStatus(sub.Status); err != nil {
		return fmt.Errorf("%w: %s", ErrIntegrity, err.Error())
	}
	if sub.ApprovalType != nil {
		if err := models.ValidateApprovalType(*sub.ApprovalType); err != nil {
			return fmt.Errorf("%w: %s", ErrIntegrity, err.Error())
		}
	}
	return nil
}

func copyResponses(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
