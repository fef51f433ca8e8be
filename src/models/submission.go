package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionStatus is the review status of a submission.
type SubmissionStatus string

const (
	StatusSubmitted   SubmissionStatus = "submitted"
	StatusUnderReview SubmissionStatus = "under_review"
	StatusApproved    SubmissionStatus = "approved"
	StatusRejected    SubmissionStatus = "rejected"
)

var validStatuses = map[SubmissionStatus]bool{
	StatusSubmitted:   true,
	StatusUnderReview: true,
	StatusApproved:    true,
	StatusRejected:    true,
}

// ValidateStatus returns an error if the status is not recognized.
func ValidateStatus(s SubmissionStatus) error {
	if !validStatuses[s] {
		return fmt.Errorf("invalid submission status %q: must be one of: submitted, under_review, approved, rejected", s)
	}
	return nil
}

// ApprovalType tells whether an approved submission was accepted with or without conditions.
type ApprovalType string

const (
	ApprovalFully     ApprovalType = "fully"
	ApprovalPartially ApprovalType = "partially"
)

// ValidateApprovalType returns an error if the approval type is not recognized.
func ValidateApprovalType(t ApprovalType) error {
	if t != ApprovalFully && t != ApprovalPartially {
		return fmt.Errorf("invalid approval type %q: must be one of: fully, partially", t)
	}
	return nil
}

// RiskLevel is ordered low < medium < high < critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Urgency of a reviewer request.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ValidateUrgency returns an error if the urgency is not recognized.
func ValidateUrgency(u Urgency) error {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return nil
	}
	return fmt.Errorf("invalid urgency %q: must be one of: low, medium, high", u)
}

// --- FormSubmission ---
type FormSubmission struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FormID         primitive.ObjectID     `bson:"formId" json:"formId"`
	SubmittedBy    string                 `bson:"submittedBy,omitempty" json:"submittedBy,omitempty"`
	SubmitterEmail string                 `bson:"submitterEmail,omitempty" json:"submitterEmail,omitempty"`
	Responses      map[string]interface{} `bson:"responses" json:"responses"`
	Status         SubmissionStatus       `bson:"status" json:"status"`
	ApprovalType   *ApprovalType          `bson:"approvalType,omitempty" json:"approvalType,omitempty"`
	Score          *Score                 `bson:"score,omitempty" json:"score,omitempty"`
	ActivityLog    []ReviewActivity       `bson:"activityLog" json:"activityLog"`
	Version        int64                  `bson:"version" json:"version"`
	// Revision counts response edits; the version only counts review transitions.
	Revision       int64                  `bson:"revision" json:"revision"`
	CreatedAt      time.Time              `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// --- Score ---
type Score struct {
	Total          float64            `bson:"total" json:"total"`
	MaxTotal       float64            `bson:"maxTotal" json:"maxTotal"`
	Percentage     int                `bson:"percentage" json:"percentage" example:"92"`
	RiskLevel      RiskLevel          `bson:"riskLevel" json:"riskLevel" example:"low"`
	Passed         bool               `bson:"passed" json:"passed"`
	Breakdown      map[string]float64 `bson:"breakdown" json:"breakdown"`
	ReviewedBy     string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time         `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewComments string             `bson:"reviewComments,omitempty" json:"reviewComments,omitempty"`
}

// Clone returns a deep copy so callers can derive a new snapshot without touching this one.
func (s *Score) Clone() *Score {
	if s == nil {
		return nil
	}
	out := *s
	if s.Breakdown != nil {
		out.Breakdown = make(map[string]float64, len(s.Breakdown))
		for k, v := range s.Breakdown {
			out.Breakdown[k] = v
		}
	}
	if s.ReviewedAt != nil {
		t := *s.ReviewedAt
		out.ReviewedAt = &t
	}
	return &out
}

// --- ReviewActivity ---

// ActivityAction is what a review activity recorded.
type ActivityAction string

const (
	ActivityApproved     ActivityAction = "approved"
	ActivityRejected     ActivityAction = "rejected"
	ActivityUnderReview  ActivityAction = "under_review"
	ActivityResent       ActivityAction = "resent"
	ActivityReminderSent ActivityAction = "reminder_sent"
)

type ReviewActivity struct {
	ID         string            `bson:"id" json:"id"`
	Action     ActivityAction    `bson:"action" json:"action"`
	Comments   string            `bson:"comments" json:"comments"`
	ReviewedBy string            `bson:"reviewedBy" json:"reviewedBy"`
	ReviewedAt time.Time         `bson:"reviewedAt" json:"reviewedAt"`
	Metadata   *ActivityMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

type ActivityMetadata struct {
	Reason            string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Urgency           Urgency       `bson:"urgency,omitempty" json:"urgency,omitempty" example:"medium"`
	ApprovalType      *ApprovalType `bson:"approvalType,omitempty" json:"approvalType,omitempty"`
	SpecificFields    []string      `bson:"specificFields,omitempty" json:"specificFields,omitempty"`
	RequiredDocuments []string      `bson:"requiredDocuments,omitempty" json:"requiredDocuments,omitempty"`
}

// Clone returns a deep copy of the metadata.
func (m *ActivityMetadata) Clone() *ActivityMetadata {
	if m == nil {
		return nil
	}
	out := *m
	if m.ApprovalType != nil {
		t := *m.ApprovalType
		out.ApprovalType = &t
	}
	out.SpecificFields = append([]string(nil), m.SpecificFields...)
	out.RequiredDocuments = append([]string(nil), m.RequiredDocuments...)
	return &out
}
