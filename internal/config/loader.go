// Package config provides centralized configuration management for
// brandcheck. Values are layered: built-in defaults, then an optional YAML
// config file, then BRANDCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const envPrefix = "BRANDCHECK"

// Load reads configuration from the given file path (optional; falls back
// to brandcheck.yaml in the working directory or ~/.config/brandcheck)
// plus environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("brandcheck")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/brandcheck")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every known key so environment-only values are
// visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("logging.level", "info")

	v.SetDefault("ipaustralia.env", "test")
	v.SetDefault("ipaustralia.token_url_test", "")
	v.SetDefault("ipaustralia.token_url_prod", "")
	v.SetDefault("ipaustralia.base_url_test", "")
	v.SetDefault("ipaustralia.base_url_prod", "")
	v.SetDefault("ipaustralia.client_id", "")
	v.SetDefault("ipaustralia.client_secret", "")
	v.SetDefault("ipaustralia.timeout", "20s")
}
