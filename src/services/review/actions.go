// Package review is the guarded state machine over a submission's review status.
// It is the only code that changes status, approvalType, activityLog and version.
// Transitions are computed in memory and returned as new values; persisting them
// is the caller's job.
package review

import (
	"fmt"

	"Backend-FormReview/src/models"
)

// Action is a reviewer command.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionRequestMoreInfo Action = "request_more_info"
	ActionResend          Action = "resend"
	ActionSendReminder    Action = "send_reminder"
)

// Actions lists every reviewer command in display order.
var Actions = []Action{
	ActionApprove,
	ActionReject,
	ActionRequestMoreInfo,
	ActionResend,
	ActionSendReminder,
}

// transitionRule describes what an action records and where it leads.
type transitionRule struct {
	records models.ActivityAction
	target  models.SubmissionStatus
	// keepStatus leaves status and approvalType untouched.
	keepStatus bool
}

var rules = map[Action]transitionRule{
	ActionApprove:         {records: models.ActivityApproved, target: models.StatusApproved},
	ActionReject:          {records: models.ActivityRejected, target: models.StatusRejected},
	ActionRequestMoreInfo: {records: models.ActivityUnderReview, target: models.StatusUnderReview},
	ActionResend:          {records: models.ActivityResent, target: models.StatusUnderReview},
	ActionSendReminder:    {records: models.ActivityReminderSent, keepStatus: true},
}

// ValidateAction returns an error if the action is not recognized.
func ValidateAction(a Action) error {
	if _, ok := rules[a]; !ok {
		return fmt.Errorf("invalid review action %q: must be one of: approve, reject, request_more_info, resend, send_reminder", a)
	}
	return nil
}

// Records returns the activity action written for a reviewer command.
func Records(a Action) (models.ActivityAction, bool) {
	r, ok := rules[a]
	return r.records, ok
}
