package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	AWS      AWSConfig
	SendGrid SendGridConfig
	Google   GoogleOAuthConfig
	Metrics  MetricsConfig
	Frontend FrontendConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// AdminConfig holds the admin override credentials. The password is stored as
// a bcrypt hash, never as plain text; cmd/genhash produces the hash.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// AWSConfig holds the S3 image storage configuration
type AWSConfig struct {
	Region    string
	Bucket    string
	PublicURL string
}

// SendGridConfig holds transactional email configuration
type SendGridConfig struct {
	APIKey     string
	SenderName string
	SenderMail string
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Prefix string
}

// FrontendConfig holds the storefront origin used for CORS and OAuth redirects
type FrontendConfig struct {
	Origin string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "velora"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			SessionExpiry: getEnvAsDuration("JWT_SESSION_EXPIRY", 7*24*time.Hour),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		AWS: AWSConfig{
			Region:    getEnv("AWS_REGION", "ap-south-1"),
			Bucket:    getEnv("AWS_BUCKET_NAME", "velora-assets"),
			PublicURL: getEnv("AWS_PUBLIC_URL", ""),
		},
		SendGrid: SendGridConfig{
			APIKey:     getEnv("SENDGRID_API_KEY", ""),
			SenderName: getEnv("EMAIL_SENDER_NAME", "Velora"),
			SenderMail: getEnv("EMAIL_SENDER_ADDRESS", "no-reply@velora.shop"),
		},
		Google: GoogleOAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "velora"),
		},
		Frontend: FrontendConfig{
			Origin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
