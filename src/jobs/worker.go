package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	"Backend-FormReview/src/config"
	"Backend-FormReview/src/services/notifications"
)

// NewServeMux registers every background task handler.
func NewServeMux(sender notifications.MailSender, frontendURL string) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	notifications.RegisterHandlers(mux, sender, frontendURL)
	return mux
}

// StartWorker runs the task server until it stops. It returns immediately when
// Redis or SMTP is not configured; notifications then go out synchronously.
func StartWorker(cfg *config.Config, redisURI string) {
	if redisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}
	sender, err := notifications.NewSMTPSender(cfg.SMTP)
	if err != nil {
		log.Println("⚠️ Worker not started:", err)
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)

	log.Println("✅ Asynq worker started")
	if err := srv.Run(NewServeMux(sender, cfg.FrontendURL)); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
