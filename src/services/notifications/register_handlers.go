package notifications

import (
	"github.com/hibiken/asynq"
)

// RegisterHandlers binds every notification task type to its handler.
func RegisterHandlers(mux *asynq.ServeMux, sender MailSender, frontendURL string) {
	mux.HandleFunc(TypeReviewNotify, HandleReviewNotify(sender, frontendURL))
}
