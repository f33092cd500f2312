package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vsplit/errs"
)

// LoadConfigFile loads configuration from a YAML file, layered over
// defaults so a partial file is fine.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.ErrConfig, "failed to read config file "+path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.New(errs.ErrConfig, "failed to parse config file "+path, err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in standard locations.
// Returns empty string if not found (non-fatal).
func FindConfigFile() string {
	locations := []string{
		"./vsplit.yaml",
		"./vsplit.yml",
		filepath.Join(os.Getenv("HOME"), ".vsplit", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".vsplit", "config.yml"),
		"/etc/vsplit/config.yaml",
		"/etc/vsplit/config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load resolves the effective file-backed configuration: the explicit
// path when given, otherwise the first standard location found,
// otherwise plain defaults.
func Load(explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// SaveConfigFile saves configuration to a YAML file
func SaveConfigFile(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errs.New(errs.ErrConfig, "failed to create config directory "+dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errs.New(errs.ErrConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.New(errs.ErrConfig, "failed to write config file "+path, err)
	}

	return nil
}
