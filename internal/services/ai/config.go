// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	APIKey  string
	BaseURL string

	ChatModel   string
	VisionModel string

	// Timeout bounds each completion call; expiry is treated like any
	// other gateway error and feeds the static-fallback path.
	Timeout time.Duration

	Temperature float32
	MaxTokens   int
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return NewConfigError("API key is required")
	}
	if c.ChatModel == "" {
		return fmt.Errorf("chat model is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		ChatModel:   "gpt-4o-mini",
		VisionModel: "gpt-4o",
		Timeout:     30 * time.Second,
		Temperature: 0.2, // low for medical accuracy
		MaxTokens:   1500,
	}
}
