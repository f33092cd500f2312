package config

import (
	"fmt"
	"strings"

	"vsplit/errs"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var problems []string

	if c.FFmpegPath == "" {
		problems = append(problems, "ffmpeg path is required")
	}

	if c.FFprobePath == "" {
		problems = append(problems, "ffprobe path is required")
	}

	if c.SafetyFactor < 0.5 || c.SafetyFactor > 1.0 {
		problems = append(problems, fmt.Sprintf("safety factor must be between 0.5 and 1.0, got %.2f", c.SafetyFactor))
	}

	if len(c.Extensions) == 0 {
		problems = append(problems, "extension allow-list cannot be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			problems = append(problems, fmt.Sprintf("extension %q must start with a dot", ext))
		}
	}

	if len(problems) > 0 {
		return errs.Newf(errs.ErrConfig, "configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return nil
}
