// Package config provides configuration management for trail.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/view"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

// Config holds the trail configuration.
type Config struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url,omitempty"`
	Usage        string `yaml:"usage,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	Engine       string `yaml:"engine,omitempty"`
	EscapeHTML   bool   `yaml:"escape_html,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("api_key is required")
	}

	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.New("base_url must use https")
	}

	if _, err := api.ParseUsage(c.Usage); err != nil {
		return err
	}
	if _, err := md.ParseEngine(c.Engine); err != nil {
		return err
	}
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return err
	}

	return nil
}

// NormalizeURL trims any trailing slash and fills in the public endpoint
// when no base URL is set.
func (c *Config) NormalizeURL() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = api.DefaultBaseURL
	}
}

// APIUsage returns the configured usage, falling back to normal.
func (c *Config) APIUsage() api.Usage {
	u, err := api.ParseUsage(c.Usage)
	if err != nil {
		return api.UsageNormal
	}
	return u
}

// ConvertOptions returns the markdown conversion settings.
func (c *Config) ConvertOptions() (md.ConvertOptions, error) {
	engine, err := md.ParseEngine(c.Engine)
	if err != nil {
		return md.ConvertOptions{}, err
	}
	return md.ConvertOptions{Engine: engine, EscapeHTML: c.EscapeHTML}, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: TRAIL_* → WPG_TRANSIT_API_KEY → existing config value
func (c *Config) LoadFromEnv() {
	if key := getEnvWithFallback("TRAIL_API_KEY", "WPG_TRANSIT_API_KEY"); key != "" {
		c.APIKey = key
	}
	if url := os.Getenv("TRAIL_BASE_URL"); url != "" {
		c.BaseURL = url
	}
	if usage := os.Getenv("TRAIL_USAGE"); usage != "" {
		c.Usage = usage
	}
	if output := os.Getenv("TRAIL_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
	if engine := os.Getenv("TRAIL_ENGINE"); engine != "" {
		c.Engine = engine
	}
	if escape := os.Getenv("TRAIL_ESCAPE_HTML"); escape != "" {
		if v, err := strconv.ParseBool(escape); err == nil {
			c.EscapeHTML = v
		}
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "trail", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".trail", "config.yml")
	}

	return filepath.Join(home, ".config", "trail", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the API key.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// A missing file is not an error; env vars may carry everything.
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
