package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReviewRequest is the body of POST /submissions/:id/review.
type ReviewRequest struct {
	Action          string            `json:"action" validate:"required,oneof=approve reject request_more_info resend send_reminder" example:"approve"`
	Comments        string            `json:"comments" validate:"required" example:"All documents verified"`
	ExpectedVersion int64             `json:"expectedVersion" validate:"min=0" example:"4"`
	Metadata        *ActivityMetadata `json:"metadata,omitempty"`
}

// ReviewResult is returned after a successful review action.
type ReviewResult struct {
	Submission *FormSubmission `json:"submission"`
	Activity   ReviewActivity  `json:"activity"`
}

// CreateSubmissionRequest is the intake payload.
type CreateSubmissionRequest struct {
	FormID         string                 `json:"formId" validate:"required,len=24,hexadecimal"`
	SubmittedBy    string                 `json:"submittedBy"`
	SubmitterEmail string                 `json:"submitterEmail" validate:"omitempty,email"`
	Responses      map[string]interface{} `json:"responses" validate:"required"`
}

// UpdateResponsesRequest replaces the responses of a submission.
type UpdateResponsesRequest struct {
	Responses map[string]interface{} `json:"responses" validate:"required"`
}

// UpdateWeightRequest changes a single field's weight multiplier.
type UpdateWeightRequest struct {
	WeightMultiplier int `json:"weightMultiplier" validate:"required,min=1,max=5" example:"3"`
}

// CompletionResponse describes how much of the form has been filled in.
type CompletionResponse struct {
	SubmissionID primitive.ObjectID `json:"submissionId"`
	Percentage   int                `json:"percentage" example:"67"`
	FormComplete bool               `json:"formComplete"`
	Missing      []string           `json:"missing,omitempty"`
}

// ApprovalSuggestion is the advisory approval type for a submission.
type ApprovalSuggestion struct {
	Type   ApprovalType `json:"type" example:"fully"`
	Reason string       `json:"reason"`
}

// ActionAvailability tells the reviewer UI whether an action is currently allowed.
type ActionAvailability struct {
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
