package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := App{
		Port:          getenv("APP_PORT", "8080"),
		Env:           getenv("APP_ENV", "dev"),
		UpstreamURL:   must("UPSTREAM_URL"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SubmitTimeout: 15 * time.Second,

		RateLimitRequests: 10,
		RateLimitWindow:   5 * time.Second,
		DailyQuota:        100,
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
