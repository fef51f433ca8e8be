package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/hibiken/asynq"

	"Backend-FormReview/src/models"
)

var subjects = map[models.ActivityAction]string{
	models.ActivityReminderSent: "Reminder: your submission is incomplete",
	models.ActivityResent:       "Your submission has been sent back for changes",
}

// HandleReviewNotify renders and sends the email for one review activity.
func HandleReviewNotify(sender MailSender, frontendURL string) asynq.HandlerFunc {
	base := strings.TrimRight(frontendURL, "/")
	return func(ctx context.Context, t *asynq.Task) error {
		var p ReviewNotifyPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode %s payload: %v: %w", TypeReviewNotify, err, asynq.SkipRetry)
		}

		subject, ok := subjects[models.ActivityAction(p.Action)]
		if !ok {
			return fmt.Errorf("no email for activity %q: %w", p.Action, asynq.SkipRetry)
		}

		html, err := RenderReviewEmailHTML(ReviewEmailData{
			Heading:           subject,
			Comments:          p.Comments,
			Urgency:           p.Urgency,
			SpecificFields:    p.SpecificFields,
			RequiredDocuments: p.RequiredDocuments,
			Link:              base + "/submissions/" + p.SubmissionID,
		})
		if err != nil {
			return err
		}

		if err := sender.Send(p.Recipient, subject, html); err != nil {
			log.Printf("[notify] ❌ send %s to %s: %v", p.Action, p.Recipient, err)
			return err
		}
		log.Printf("[notify] ✅ sent %s for submission %s", p.Action, p.SubmissionID)
		return nil
	}
}
