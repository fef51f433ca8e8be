package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type Config struct {
	AppURI         string
	AllowedOrigins string
	MongoURI       string
	MongoDB        string
	RedisURI       string
	FormCacheTTL   time.Duration
	JWTSecret      string
	FrontendURL    string
	SMTP           SMTPConfig

	// SeedSampleForms inserts demo forms at startup.
	SeedSampleForms bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		AppURI:         getEnv("APP_URI", "8888"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "FormReviewDB"),
		RedisURI:       os.Getenv("REDIS_URI"),
		FormCacheTTL:   getDuration("FORM_CACHE_TTL", 10*time.Minute),
		JWTSecret:      getEnv("JWT_SECRET", "your_secret_key"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:9000"),
		SMTP: SMTPConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: getInt("SMTP_PORT", 0),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("SMTP_FROM"),
		},
		SeedSampleForms: getBool("SEED_SAMPLE_FORMS", false),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set. Please create a .env file and set it")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
