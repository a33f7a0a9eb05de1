package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Background counter reconciliation
	ReconcileInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	if rateLimit < 1 {
		rateLimit = 120
	}
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30"))
	if burst < 1 {
		burst = 30
	}

	interval, err := time.ParseDuration(getEnv("COUNTER_RECONCILE_INTERVAL", "1h"))
	if err != nil {
		interval = time.Hour
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "social_feed.db"),
		RateLimitPerMinute: rateLimit,
		RateLimitBurst:     burst,
		ReconcileInterval:  interval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
