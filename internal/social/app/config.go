package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Issuer claim for session tokens (default: upchain-social)

	DatabaseFile   string // Path to SQLite database file (default: ./social.db)
	PepperFile     string // Path to password hashing pepper file (default: ./pepper)
	SessionKeyFile string // Path to the EdDSA session key (default: ./session.key)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	SessionTTL      time.Duration // Session token lifetime (default: 24h)
	OTPTTL          time.Duration // Verification code lifetime (default: 10m)
	PremiumDuration time.Duration // Premium window granted per upgrade (default: 720h)

	// SuggestExcludeFollowed hides already-followed users from the
	// suggestions endpoint.
	SuggestExcludeFollowed bool

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	// SMTP relay; empty addr means log-only mail delivery.
	SMTPAddr     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	// S3-compatible object store for profile photos; empty bucket means
	// local disk uploads.
	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	UploadDir     string // Local upload directory when no bucket is set (default: ./uploads)
	UploadBaseURL string // URL prefix for locally stored uploads (default: /uploads)
}

func LoadConfig() Config {
	return Config{
		Issuer: getEnvOrDefault("ISSUER", "upchain-social"),

		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "social.db"),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),
		SessionKeyFile: getEnvOrDefault("SESSION_KEY_FILE", "session.key"),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		SessionTTL:      getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		OTPTTL:          getEnvDurationOrDefault("OTP_TTL", 10*time.Minute),
		PremiumDuration: getEnvDurationOrDefault("PREMIUM_DURATION", 720*time.Hour),

		SuggestExcludeFollowed: getEnvBoolOrDefault("SUGGEST_EXCLUDE_FOLLOWED", false),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),

		SMTPAddr:     os.Getenv("SMTP_ADDR"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "no-reply@upchain.social"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3Region:        getEnvOrDefault("S3_REGION", "us-east-1"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),

		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getEnvOrDefault("UPLOAD_BASE_URL", "/uploads"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
