package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Backend struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"backend"`

	Auth struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"auth"`

	Audit struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"audit"`

	Summary struct {
		Enabled      bool   `mapstructure:"enabled"`
		Provider     string `mapstructure:"provider"` // "openai" or "gemini"
		Model        string `mapstructure:"model"`
		OpenaiApiKey string `mapstructure:"openai_api_key"`
		GeminiApiKey string `mapstructure:"gemini_api_key"`
	} `mapstructure:"summary"`

	Sanitize struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"sanitize"`
}

// BackendTimeout returns the configured client timeout. Zero means no
// client-side timeout; the transport's own failure signaling applies.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("backend.base_url", "http://localhost:5000")
	viper.SetDefault("backend.timeout_seconds", 0)
	viper.SetDefault("auth.username", "demo")
	viper.SetDefault("auth.password", "demo")
	viper.SetDefault("audit.path", "moderation_audit.db")
	viper.SetDefault("summary.enabled", false)
	viper.SetDefault("summary.provider", "gemini")
	viper.SetDefault("sanitize.enabled", true)

	viper.AutomaticEnv()
	// Secrets come from the environment without a prefix, matching how
	// the providers expect them to be named.
	viper.BindEnv("summary.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("summary.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("backend.base_url", "CERBERUS_BACKEND_URL")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
