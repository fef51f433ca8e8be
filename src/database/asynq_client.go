package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq creates the task client once Redis has answered a ping.
// Without it, review emails are sent inline.
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq Client initialized successfully")
}

// CloseAsynq releases the task client's connections.
func CloseAsynq() {
	if AsynqClient == nil {
		return
	}
	if err := AsynqClient.Close(); err != nil {
		log.Println("⚠️ Failed to close Asynq client:", err)
	}
}
