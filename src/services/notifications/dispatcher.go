package notifications

import (
	"context"
	"errors"
	"log"

	"github.com/hibiken/asynq"

	"Backend-FormReview/src/models"
)

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher queues review emails, or sends them inline when there is no queue.
type Dispatcher struct {
	queue Enqueuer
	send  asynq.HandlerFunc
}

// NewDispatcher takes a nil queue when Redis is unavailable, and a nil sender
// when SMTP is not configured. The worker needs the same SMTP settings to
// consume the queue, so without a sender the queue is ignored and
// notifications are dropped instead of piling up unconsumed.
func NewDispatcher(queue Enqueuer, sender MailSender, frontendURL string) *Dispatcher {
	if sender == nil {
		if queue != nil {
			log.Println("[notify] ⚠️ mail sender disabled → review emails will not be queued")
		}
		return &Dispatcher{}
	}
	return &Dispatcher{
		queue: queue,
		send:  HandleReviewNotify(sender, frontendURL),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, sub *models.FormSubmission, activity models.ReviewActivity) error {
	if sub.SubmitterEmail == "" {
		log.Printf("[notify] ⚠️ submission %s has no submitter email, skipping %s", sub.ID.Hex(), activity.Action)
		return nil
	}

	task, err := NewReviewNotifyTask(payloadFor(sub, activity))
	if err != nil {
		return err
	}

	if d.queue != nil {
		_, err := d.queue.Enqueue(task, asynq.TaskID(taskID(activity.ID)), asynq.MaxRetry(3))
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Printf("[notify] activity %s already queued", activity.ID)
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("[notify] ✅ enqueued %s for submission %s", activity.Action, sub.ID.Hex())
		return nil
	}

	if d.send == nil {
		log.Printf("[notify] ⚠️ no queue and no mail sender, dropping %s for submission %s", activity.Action, sub.ID.Hex())
		return nil
	}
	log.Println("[notify] ⚠️ Redis not available → sending review email synchronously")
	return d.send(ctx, task)
}

func payloadFor(sub *models.FormSubmission, activity models.ReviewActivity) ReviewNotifyPayload {
	p := ReviewNotifyPayload{
		SubmissionID: sub.ID.Hex(),
		ActivityID:   activity.ID,
		Action:       string(activity.Action),
		Comments:     activity.Comments,
		Recipient:    sub.SubmitterEmail,
	}
	if m := activity.Metadata; m != nil {
		p.Urgency = string(m.Urgency)
		p.SpecificFields = m.SpecificFields
		p.RequiredDocuments = m.RequiredDocuments
	}
	return p
}
