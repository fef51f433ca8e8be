package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects to Redis. Without REDIS_URI the form cache and the
// notification queue are disabled and the service keeps running.
func InitRedis(uri string) {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set. Form cache and notification queue are disabled.")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     uri, // e.g. localhost:6379
		Password: "",
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		_ = rdb.Close()
		return
	}

	RedisClient = rdb
	RedisURI = uri
	log.Println("✅ Redis connected successfully")
}
