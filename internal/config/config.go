package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete application configuration, loaded from a
// YAML file and BRANDCHECK_* environment variables.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	IPAustralia IPAustraliaConfig `mapstructure:"ipaustralia"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// IPAustraliaConfig contains the trademark registry endpoints and
// credentials. Test and production endpoint pairs are both held; Env
// selects which pair is active.
type IPAustraliaConfig struct {
	// Env selects the endpoint pair: "test" or "production".
	Env string `mapstructure:"env"`

	TokenURLTest string `mapstructure:"token_url_test"`
	TokenURLProd string `mapstructure:"token_url_prod"`
	BaseURLTest  string `mapstructure:"base_url_test"`
	BaseURLProd  string `mapstructure:"base_url_prod"`

	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`

	Timeout time.Duration `mapstructure:"timeout"`
}

// Endpoints resolves the active token URL and trademark base URL.
func (c IPAustraliaConfig) Endpoints() (tokenURL, baseURL string) {
	if strings.EqualFold(strings.TrimSpace(c.Env), "production") {
		return c.TokenURLProd, c.BaseURLProd
	}
	return c.TokenURLTest, c.BaseURLTest
}

// Validate reports fatally invalid configuration. Missing trademark
// credentials are not fatal here; they degrade the trademark check instead.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	env := strings.ToLower(strings.TrimSpace(c.IPAustralia.Env))
	if env != "" && env != "test" && env != "production" {
		return fmt.Errorf("invalid ipaustralia env: %q (want test or production)", c.IPAustralia.Env)
	}

	return nil
}
