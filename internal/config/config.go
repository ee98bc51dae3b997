// Package config loads admitctl configuration from an optional YAML file and
// ADMITCTL_* environment variables using Viper.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/admitly/admitctl/internal/errors"
)

// DefaultAPIURL is the CRM API origin used when none is configured.
const DefaultAPIURL = "https://crm-frontend-demo.onrender.com/api"

// Config holds the client configuration.
type Config struct {
	// APIURL is the base URL of the CRM REST API.
	APIURL string `mapstructure:"api_url"`
	// TenantSlug is the deploy-time default tenant slug. A slug stored by a
	// previous login always wins over this value.
	TenantSlug string `mapstructure:"tenant_slug"`
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// NoInput disables interactive prompts (forms, spinners).
	NoInput bool `mapstructure:"no_input"`

	Log LogSettings `mapstructure:"log"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Dir returns the admitctl config/state directory, creating nothing.
func Dir() string {
	if dir := os.Getenv("ADMITCTL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".admitctl"
	}
	return filepath.Join(home, ".admitctl")
}

// Load reads config.yaml from the admitctl directory (if present), applies
// defaults, and lets ADMITCTL_* environment variables override both.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())

	v.SetEnvPrefix("ADMITCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("tenant_slug", "")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("no_input", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.NewConfigInvalidError("config.yaml could not be parsed", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigInvalidError("config values have wrong types", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewConfigInvalidError("api_url must be an absolute URL", err)
	}
	if c.TimeoutSeconds <= 0 {
		return errors.NewConfigInvalidError("timeout_seconds must be positive", nil)
	}
	return nil
}

// Timeout returns the configured HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// APIHost returns the hostname portion of the API base URL.
// It is the CLI analog of the browser location host, used for
// subdomain-derived tenant resolution.
func (c *Config) APIHost() string {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
