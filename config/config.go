// Package config holds the runtime configuration for vsplit.
//
// Priority: CLI flags > config file > defaults. The byte budget and
// input path are positional CLI arguments and never live here.
package config

import (
	"sort"
	"strings"
)

// Config holds all splitter configuration options
type Config struct {
	// External tool paths, resolved at startup and passed explicitly
	// into the prober/splitter collaborators
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Planning settings
	SafetyFactor float64 `yaml:"safety_factor"` // fraction of the budget actually targeted

	// CopyUnderBudget controls what happens to a file already at or
	// under the budget: false skips it (no ffmpeg invocation), true
	// produces the trivial one-segment copy.
	CopyUnderBudget bool `yaml:"copy_under_budget"`

	// Extensions is the allow-list used when the input is a directory.
	// Entries include the leading dot and are matched case-insensitively.
	Extensions []string `yaml:"extensions"`

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Print the run report as JSON
	DryRun  bool `yaml:"dry_run"` // Plan and print commands without executing
}

// DefaultExtensions returns the fixed media container allow-list used
// for directory inputs. Files with other extensions are ignored, not
// errors.
func DefaultExtensions() []string {
	return []string{".mp4", ".mkv", ".avi", ".mov", ".webm", ".m4v", ".ts", ".flv"}
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Resolve tools on PATH unless overridden
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",

		// 2% headroom against VBR spikes and keyframe alignment
		SafetyFactor: 0.98,

		// Files already under budget are skipped, matching the
		// "no splitting needed" behavior users expect
		CopyUnderBudget: false,

		Extensions: DefaultExtensions(),

		Verbose: false,
		DryRun:  false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copied := *c
	copied.Extensions = append([]string(nil), c.Extensions...)
	return &copied
}

// AllowsExtension reports whether a file extension (with leading dot)
// is on the allow-list. Matching is case-insensitive.
func (c *Config) AllowsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.Extensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// SortedExtensions returns the allow-list sorted for stable display.
func (c *Config) SortedExtensions() []string {
	sorted := append([]string(nil), c.Extensions...)
	sort.Strings(sorted)
	return sorted
}
