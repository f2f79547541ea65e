package config

import "time"

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	Env           string `env:"APP_ENV" default:"dev"`
	UpstreamURL   string `env:"UPSTREAM_URL,required"`
	RedisAddr     string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	SubmitTimeout time.Duration

	// Upstream limits, surfaced to clients as informational data only.
	// Enforcement lives server-side at the ordering API.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	DailyQuota        int
}
