package config

import (
	"errors"
	"fmt"
	"net/url"
)

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	parsed, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got '%s'", c.Backend.BaseURL)
	}

	if c.Backend.TimeoutSeconds < 0 {
		return errors.New("backend.timeout_seconds must not be negative")
	}

	if c.Audit.Path == "" {
		return errors.New("audit.path is required")
	}

	if c.Summary.Enabled {
		switch c.Summary.Provider {
		case "openai", "gemini":
		case "":
			return errors.New("summary.provider is required when summary is enabled")
		default:
			return fmt.Errorf("unsupported summary provider '%s'", c.Summary.Provider)
		}
	}

	return nil
}
