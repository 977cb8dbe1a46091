// File: internal/services/analysis/config.go
package analysis

import "fmt"

type Config struct {
	// MinSymptomLength is the minimum accepted symptom text length.
	MinSymptomLength int

	// HistoryLimit caps how many past entries a history fetch returns.
	HistoryLimit int

	// ContextEntries is how many recent session entries feed the
	// conversational-context line of subsequent prompts.
	ContextEntries int

	// MaxImageBytes bounds uploaded image size.
	MaxImageBytes int64
}

func (c *Config) Validate() error {
	if c.MinSymptomLength <= 0 {
		return fmt.Errorf("min_symptom_length must be positive")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		MinSymptomLength: 3,
		HistoryLimit:     10,
		ContextEntries:   2,
		MaxImageBytes:    8 << 20,
	}
}
