package notifications

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeReviewNotify = "review:notify"

type ReviewNotifyPayload struct {
	SubmissionID      string   `json:"submissionId"`
	ActivityID        string   `json:"activityId"`
	Action            string   `json:"action"`
	Comments          string   `json:"comments"`
	Urgency           string   `json:"urgency,omitempty"`
	SpecificFields    []string `json:"specificFields,omitempty"`
	RequiredDocuments []string `json:"requiredDocuments,omitempty"`
	Recipient         string   `json:"recipient"`
}

func NewReviewNotifyTask(p ReviewNotifyPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReviewNotify, b), nil
}

// taskID makes re-enqueueing the same activity a no-op.
func taskID(activityID string) string {
	return "review-notify-" + activityID
}
