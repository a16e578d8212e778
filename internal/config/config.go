package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr    string
	DatabaseURL string

	// Sessions
	SessionSecret  string
	SessionIssuer  string
	SessionCookie  string
	CookieSecure   bool
	EduEnforcement bool

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis & Caching
	RedisURL         string
	RedisKeyPrefix   string
	CacheTTLListings time.Duration

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	// Intake
	SeedSampleData         bool
	IntakeMaxOpportunities int
	IntakeMaxEvents        int

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = firstEnv("DATABASE_URL", "POSTGRES_URL", "PG_URI")

	cfg.SessionSecret = getEnv("SESSION_SECRET", "")
	cfg.SessionIssuer = getEnv("SESSION_ISSUER", "")
	cfg.SessionCookie = getEnv("SESSION_COOKIE", "session")
	cfg.CookieSecure = getBool("COOKIE_SECURE", !cfg.IsDev())
	// Only the literal "true" turns the student gate on.
	cfg.EduEnforcement = strings.EqualFold(getEnv("EDU_ENFORCEMENT", ""), "true")

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "campus.match")

	// Empty disables caching.
	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", "campus-match:")
	cfg.CacheTTLListings = getDuration("CACHE_TTL_LISTINGS", 30*time.Second)

	// Rate Limiting Defaults: 100 reqs / 1 min
	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.SeedSampleData = getBool("SEED_SAMPLE_DATA", cfg.IsDev())
	cfg.IntakeMaxOpportunities = getIntEnv("INTAKE_MAX_OPPORTUNITIES", 8)
	cfg.IntakeMaxEvents = getIntEnv("INTAKE_MAX_EVENTS", 6)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// validation
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("missing SESSION_SECRET")
	}
	if !cfg.IsDev() && cfg.RabbitURL == "" {
		return nil, fmt.Errorf("missing RABBIT_URL (required when APP_ENV != dev)")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := getEnv(k, ""); v != "" {
			return v
		}
	}
	return ""
}

// getBool treats false/0/off/no as false and anything else set as true.
func getBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "false", "0", "off", "no":
		return false
	default:
		return true
	}
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
