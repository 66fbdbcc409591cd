package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the configuration and validates it. Values come from
// defaults, then the YAML file, then the environment, each layer
// overriding the one before. The file is CONFIG_PATH or ./config.yaml; only
// an explicitly named file has to exist.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// defaults pre-fills the switches that are on unless configured off.
// cleanenv applies env-default only to zero values, so a default of true on
// a bool tag would override an explicit false from the file.
func defaults() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.Auth.RequireConfirmation = true
	cfg.CORS.AllowCredentials = true
	cfg.Metrics.Enabled = true
	return cfg
}

func read(path string, explicit bool) (*Config, error) {
	cfg := defaults()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}

// Usage extends a flag usage func with the list of environment variables
// the configuration reads.
func Usage(flagUsage func()) func() {
	header := "\nEnvironment variables:"
	return cleanenv.FUsage(os.Stderr, &Config{}, &header, flagUsage)
}
