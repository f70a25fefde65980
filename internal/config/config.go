// Package config loads pdf2latex configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/jackzampolin/pdf2latex/internal/providers"
)

// ErrMissingAPIKey reports a missing credential. Nothing useful can run
// without it, so callers treat this as fatal before any work starts.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

// Config holds the remote model settings. Page-range and output options are
// per-invocation flags, not configuration.
type Config struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Load reads configuration with the following precedence: environment
// variables (ANTHROPIC_API_KEY, ANTHROPIC_MODEL), then the config file, then
// defaults. cfgFile may be empty, in which case ./config.yaml or
// ~/.pdf2latex/config.yaml is used if present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("model", providers.DefaultModel)

	// Env names are fixed by convention with the vendor SDK, so these are
	// bound explicitly rather than via a prefix.
	_ = v.BindEnv("api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("model", "ANTHROPIC_MODEL")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pdf2latex")

		// Config file is optional.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &cfg, nil
}
