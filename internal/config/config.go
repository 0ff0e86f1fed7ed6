package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret"

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
	HelpDesk     HelpDeskConfig
	Features     FeatureFlags
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret               string
	AccessTokenTTLMinutes   int
	RememberMeTTLHours      int
	PasswordResetTTLMinutes int
	BcryptCost              int
	CookieSecure            bool
}

// NotificationConfig holds the email stub sender and the outbound webhook settings.
type NotificationConfig struct {
	EmailFrom          string
	WebhookURL         string
	WebhookSecret      string
	WebhookMaxRetries  int
	WebhookBaseDelayMS int
	WebhookTimeoutSec  int
}

// HelpDeskConfig tunes help request listing.
type HelpDeskConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	CacheTTLSeconds int
}

// FeatureFlags are the server-side switches exposed at GET /features.
type FeatureFlags struct {
	EmergencyEndpoint bool `json:"emergencyEndpoint"`
	Announcements     bool `json:"announcements"`
	V2                bool `json:"v2"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	appEnv := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "community-service"),
			Env:                   appEnv,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:               os.Getenv("AUTH_JWT_SECRET"),
			AccessTokenTTLMinutes:   getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 24*60),
			RememberMeTTLHours:      getEnvAsInt("AUTH_REMEMBER_ME_TTL_HOURS", 7*24),
			PasswordResetTTLMinutes: getEnvAsInt("AUTH_PASSWORD_RESET_TTL_MINUTES", 60),
			BcryptCost:              getEnvAsInt("AUTH_BCRYPT_COST", 12),
			CookieSecure:            getEnvAsBool("AUTH_COOKIE_SECURE", appEnv == "production"),
		},
		Notification: NotificationConfig{
			EmailFrom:          getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL:         getEnv("NOTIFY_WEBHOOK_URL", ""),
			WebhookSecret:      os.Getenv("NOTIFY_WEBHOOK_SECRET"),
			WebhookMaxRetries:  getEnvAsInt("NOTIFY_WEBHOOK_MAX_RETRIES", 3),
			WebhookBaseDelayMS: getEnvAsInt("NOTIFY_WEBHOOK_BASE_DELAY_MS", 500),
			WebhookTimeoutSec:  getEnvAsInt("NOTIFY_WEBHOOK_TIMEOUT_SECONDS", 5),
		},
		HelpDesk: HelpDeskConfig{
			DefaultPageSize: getEnvAsInt("HELPDESK_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     getEnvAsInt("HELPDESK_MAX_PAGE_SIZE", 100),
			CacheTTLSeconds: getEnvAsInt("HELPDESK_CACHE_TTL_SECONDS", 30),
		},
		Features: FeatureFlags{
			EmergencyEndpoint: getEnvAsBool("FEATURE_EMERGENCY_ENDPOINT", true),
			Announcements:     getEnvAsBool("FEATURE_ANNOUNCEMENTS", true),
			V2:                getEnvAsBool("FEATURE_V2", false),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if !cfg.App.IsDevelopment() {
			return nil, errors.New("AUTH_JWT_SECRET is required outside development")
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsDevelopment reports whether the service runs in development mode.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development"
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long active listing pages stay cached; zero disables caching.
func (h HelpDeskConfig) CacheTTL() time.Duration {
	if h.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(h.CacheTTLSeconds) * time.Second
}

func (n NotificationConfig) WebhookBaseDelay() time.Duration {
	return time.Duration(n.WebhookBaseDelayMS) * time.Millisecond
}

func (n NotificationConfig) WebhookTimeout() time.Duration {
	return time.Duration(n.WebhookTimeoutSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
