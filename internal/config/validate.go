package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if err := c.Kafka.validate(); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit: auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics: path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}
	if a.RefreshTokenTTL < a.AccessTokenTTL {
		return fmt.Errorf("refresh_token_ttl (%v) must not be shorter than access_token_ttl (%v)",
			a.RefreshTokenTTL, a.AccessTokenTTL)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if _, ok := domain.ParseRole(a.DefaultRole); !ok {
		return fmt.Errorf("default_role %q is not a known role", a.DefaultRole)
	}
	if domain.Role(a.DefaultRole).IsAdmin() {
		return fmt.Errorf("default_role must not be admin")
	}
	if a.RequireConfirmation && a.ConfirmationTTL <= 0 {
		return fmt.Errorf("confirmation_ttl must be > 0 when confirmation is required")
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.RoleCacheSize <= 0 {
		return fmt.Errorf("role_cache_size must be > 0 (got %d)", s.RoleCacheSize)
	}
	if s.RoleCacheTTL <= 0 {
		return fmt.Errorf("role_cache_ttl must be > 0 (got %v)", s.RoleCacheTTL)
	}
	if s.SubscriberBuffer < 0 {
		return fmt.Errorf("subscriber_buffer must be >= 0 (got %d)", s.SubscriberBuffer)
	}
	return nil
}

func (k *KafkaConfig) validate() error {
	if !k.Enabled {
		return nil
	}
	if len(k.Brokers) == 0 {
		return fmt.Errorf("brokers are required when kafka is enabled")
	}
	if strings.TrimSpace(k.Topic) == "" {
		return fmt.Errorf("topic is required when kafka is enabled")
	}
	return nil
}
