package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file path

	// Secrets
	EncryptionKey string // 32-byte key for token encryption
	AdminSecret   string

	// Twitter (admin publishing account)
	TwitterAPIURL      string
	TwitterAccessToken string

	// Instagram
	InstagramAPIURL       string
	InstagramClientID     string
	InstagramClientSecret string
	InstagramRedirectURI  string

	// AI Providers
	GLMAPIKey string
	GLMAPIURL string
	GLMModel  string

	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string

	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	AITimeout      time.Duration
	PublishTimeout time.Duration

	// Billing webhook
	BillingWebhookSecret string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// Best effort, mirrors the dashboard's dotenv behavior.
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "post_muse"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "data/post_muse.db"),

		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
		AdminSecret:   getEnv("ADMIN_SECRET", ""),

		TwitterAPIURL:      getEnv("TWITTER_API_URL", "https://api.twitter.com"),
		TwitterAccessToken: getEnv("TWITTER_ACCESS_TOKEN", ""),

		InstagramAPIURL:       getEnv("INSTAGRAM_API_URL", "https://graph.instagram.com"),
		InstagramClientID:     getEnv("INSTAGRAM_CLIENT_ID", ""),
		InstagramClientSecret: getEnv("INSTAGRAM_CLIENT_SECRET", ""),
		InstagramRedirectURI:  getEnv("INSTAGRAM_REDIRECT_URI", "http://localhost:8000/api/auth/instagram/callback"),

		GLMAPIKey: getEnv("GLM_API_KEY", ""),
		GLMAPIURL: getEnv("GLM_API_URL", "https://api.z.ai/api/paas/v4/chat/completions"),
		GLMModel:  getEnv("GLM_MODEL", "glm-4-plus"),

		DeepSeekAPIKey: getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		AITimeout:      parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),
		PublishTimeout: parseDuration(getEnv("PUBLISH_TIMEOUT", "10s"), 10*time.Second),

		BillingWebhookSecret: getEnv("BILLING_WEBHOOK_SECRET", ""),

		Port:        getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
