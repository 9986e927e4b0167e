package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string
	LogLevel    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// InternalServiceSecret admits machine-to-machine callers. Configured
	// out of band; with no value the internal routes reject everything.
	InternalServiceSecret string

	StaffSessionTTLMinutes  int
	DriverSessionTTLMinutes int
	StoreTimeoutSeconds     int

	LoginRateLimit         int
	LoginRateWindowSeconds int

	CookieSecure bool
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:                addr,
		PostgresDSN:             os.Getenv("POSTGRES_DSN"),
		LogLevel:                envDefault("LOG_LEVEL", "info"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisPassword:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 envIntDefault("REDIS_DB", 0),
		InternalServiceSecret:   os.Getenv("INTERNAL_SERVICE_SECRET"),
		StaffSessionTTLMinutes:  envIntDefault("STAFF_SESSION_TTL_MINUTES", 720),
		DriverSessionTTLMinutes: envIntDefault("DRIVER_SESSION_TTL_MINUTES", 43200),
		StoreTimeoutSeconds:     envIntDefault("STORE_TIMEOUT_SECONDS", 3),
		LoginRateLimit:          envIntDefault("LOGIN_RATE_LIMIT", 0),
		LoginRateWindowSeconds:  envIntDefault("LOGIN_RATE_WINDOW_SECONDS", 60),
		CookieSecure:            envBoolDefault("COOKIE_SECURE", true),
	}
}

func (c Config) StaffSessionTTL() time.Duration {
	return time.Duration(c.StaffSessionTTLMinutes) * time.Minute
}

func (c Config) DriverSessionTTL() time.Duration {
	return time.Duration(c.DriverSessionTTLMinutes) * time.Minute
}

func (c Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

func (c Config) LoginRateWindow() time.Duration {
	return time.Duration(c.LoginRateWindowSeconds) * time.Second
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}
