package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Backend.BaseURL = "http://localhost:5000"
	cfg.Audit.Path = "moderation_audit.db"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"https base url", func(c *Config) { c.Backend.BaseURL = "https://mod.example.com" }, ""},
		{"missing base url", func(c *Config) { c.Backend.BaseURL = "" }, "base_url is required"},
		{"non-http scheme", func(c *Config) { c.Backend.BaseURL = "ftp://host" }, "must be an http(s) URL"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSeconds = -1 }, "must not be negative"},
		{"missing audit path", func(c *Config) { c.Audit.Path = "" }, "audit.path is required"},
		{"summary enabled without provider", func(c *Config) { c.Summary.Enabled = true }, "summary.provider is required"},
		{"summary with unknown provider", func(c *Config) {
			c.Summary.Enabled = true
			c.Summary.Provider = "claude"
		}, "unsupported summary provider"},
		{"summary with openai", func(c *Config) {
			c.Summary.Enabled = true
			c.Summary.Provider = "openai"
		}, ""},
		{"provider ignored when disabled", func(c *Config) { c.Summary.Provider = "bogus" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestBackendTimeout(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, int64(0), int64(cfg.BackendTimeout()))

	cfg.Backend.TimeoutSeconds = 30
	assert.Equal(t, "30s", cfg.BackendTimeout().String())
}
