package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	ServiceDatabaseURL string

	JWTSecret     string
	SessionExpiry time.Duration

	AdminEmail    string
	AdminPassword string

	ResendAPIKey     string
	ContactFrom      string
	ContactRecipient string

	AIProvider    string
	GeminiApiKey  string
	OllamaBaseURL string
	OllamaModel   string

	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3BaseEndpoint  string
	S3PublicBaseURL string

	MaxUploadBytes int64
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionExpiry := 24 * time.Hour
	if exp := os.Getenv("SESSION_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionExpiry = parsed
		}
	}

	maxUpload := int64(5 * 1024 * 1024)
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		ServiceDatabaseURL: getEnv("SERVICE_DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		SessionExpiry:      sessionExpiry,
		AdminEmail:         getEnv("ADMIN_EMAIL", "contacto@revdev.mx"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		ContactFrom:        getEnv("CONTACT_FROM", "RevDev Solutions <onboarding@resend.dev>"),
		ContactRecipient:   getEnv("CONTACT_RECIPIENT", "revdevsolutions@gmail.com"),
		AIProvider:         getEnv("AI_PROVIDER", "auto"),
		GeminiApiKey:       getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:        getEnv("OLLAMA_MODEL", "llama3"),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3AccessKey:        getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:        getEnv("S3_SECRET_KEY", ""),
		S3BaseEndpoint:     getEnv("S3_BASE_ENDPOINT", ""),
		S3PublicBaseURL:    getEnv("S3_PUBLIC_BASE_URL", ""),
		MaxUploadBytes:     maxUpload,
	}
}

// IsDatabaseConfigured reports whether the hosted store is available.
// Every server path branches on this: without a database the service
// runs in demo mode against fixed or in-memory data.
func (c *Config) IsDatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

// IsBlobConfigured reports whether image storage is available.
func (c *Config) IsBlobConfigured() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
