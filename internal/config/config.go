package config

import (
	"time"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Mail      MailConfig      `yaml:"mail"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-description:"defaults to true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-description:"defaults to true"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer           string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"realty-crm"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"15m"`
	RefreshTokenTTL     time.Duration `yaml:"refresh_token_ttl"    env:"AUTH_REFRESH_TOKEN_TTL"    env-default:"720h"`
	PasswordHashCost    int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"12"`
	DefaultRole         string        `yaml:"default_role"         env:"AUTH_DEFAULT_ROLE"         env-default:"client"`
	RequireConfirmation bool          `yaml:"require_confirmation" env:"AUTH_REQUIRE_CONFIRMATION" env-description:"defaults to true"`
	ConfirmationTTL     time.Duration `yaml:"confirmation_ttl"     env:"AUTH_CONFIRMATION_TTL"     env-default:"48h"`
}

// SignUpRole returns DefaultRole as a domain.Role. Validate guarantees it
// is a member of the closed set.
func (c AuthConfig) SignUpRole() domain.Role {
	return domain.Role(c.DefaultRole)
}

// SessionConfig holds settings of the session provider's role cache.
type SessionConfig struct {
	RoleCacheSize    int           `yaml:"role_cache_size"   env:"SESSION_ROLE_CACHE_SIZE"   env-default:"10000"`
	RoleCacheTTL     time.Duration `yaml:"role_cache_ttl"    env:"SESSION_ROLE_CACHE_TTL"    env-default:"5m"`
	SubscriberBuffer int           `yaml:"subscriber_buffer" env:"SESSION_SUBSCRIBER_BUFFER" env-default:"64"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client address.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// KafkaConfig controls publishing of activity and session events.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"crm.activity"`
}

// MailConfig configures delivery of sign-up confirmation emails. With an
// empty ResendAPIKey the link is written to the log instead.
type MailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"MAIL_RESEND_API_KEY"`
	From         string `yaml:"from"           env:"MAIL_FROM"           env-default:"CRM <no-reply@example.com>"`
	ConfirmURL   string `yaml:"confirm_url"    env:"MAIL_CONFIRM_URL"    env-default:"http://localhost:8080/auth/confirm"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-description:"defaults to true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
