package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the client's runtime settings, read from environment
// variables (a .env file, if present, is loaded by main beforehand).
type Config struct {
	APIBaseURL      string        `env:"LANDMARKET_API_URL,          default=http://localhost:5000/api/v1"`
	CredentialsFile string        `env:"LANDMARKET_CREDENTIALS_FILE"`
	RequestTimeout  time.Duration `env:"LANDMARKET_TIMEOUT,          default=10s"`
	Env             string        `env:"ENV,                         default=development"`
	LogLevel        string        `env:"LOG_LEVEL,                   default=info"`
	LogFormat       string        `env:"LOG_FORMAT,                  default=console"`
}

// Load reads configuration from environment variables using go-envconfig.
// When no credentials file is configured, the default under the user's
// home directory is used.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.CredentialsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home directory: %w", err)
		}
		cfg.CredentialsFile = filepath.Join(home, ".landmarket", "credentials.json")
	}

	return &cfg, nil
}

// Production reports whether the client runs against a production
// deployment.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Validate rejects configurations that cannot be used safely. Credentials
// travel in request bodies, so production deployments must talk to an
// encrypted endpoint.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: LANDMARKET_API_URL must not be empty")
	}
	if c.Production() && strings.HasPrefix(c.APIBaseURL, "http://") {
		return fmt.Errorf("config: production requires an https API endpoint")
	}
	return nil
}
