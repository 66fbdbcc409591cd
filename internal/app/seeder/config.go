package seeder

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings.
type Config struct {
	// OwnerEmail selects the identity to seed. Empty means the oldest one.
	OwnerEmail string        `yaml:"owner_email" env:"SEEDER_OWNER_EMAIL"`
	DryRun     bool          `yaml:"dry_run"     env:"SEEDER_DRY_RUN"`
	Timeout    time.Duration `yaml:"timeout"     env:"SEEDER_TIMEOUT"     env-default:"2m"`
}

// LoadConfig reads the YAML file at path, or only the environment when path
// is empty, and validates the result. Environment values win over the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("seeder config: read: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Override applies command line values; zero values keep the loaded ones.
func (c *Config) Override(email string, dryRun bool) error {
	if email != "" {
		c.OwnerEmail = email
	}
	if dryRun {
		c.DryRun = true
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	c.OwnerEmail = strings.ToLower(strings.TrimSpace(c.OwnerEmail))
	if c.OwnerEmail != "" {
		if _, err := mail.ParseAddress(c.OwnerEmail); err != nil {
			return fmt.Errorf("seeder config: owner_email %q: %w", c.OwnerEmail, err)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("seeder config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
