package config

import (
	"os"
	"path/filepath"
	"testing"

	"vsplit/errs"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vsplit.yaml")

	content := `ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
safety_factor: 0.95
copy_under_budget: true
extensions:
  - .mp4
  - .mkv
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %s; want /opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
	}
	// Unspecified fields keep defaults
	if cfg.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath = %s; want default ffprobe", cfg.FFprobePath)
	}
	if cfg.SafetyFactor != 0.95 {
		t.Errorf("SafetyFactor = %f; want 0.95", cfg.SafetyFactor)
	}
	if !cfg.CopyUnderBudget {
		t.Error("CopyUnderBudget should be true")
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Extensions = %v; want the two from the file", cfg.Extensions)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile("/nonexistent/vsplit.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errs.IsType(err, errs.ErrConfig) {
		t.Errorf("error type = %v; want ErrConfig", err)
	}
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vsplit.yaml")
	if err := os.WriteFile(path, []byte("safety_factor: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfigFile(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !errs.IsType(err, errs.ErrConfig) {
		t.Errorf("error type = %v; want ErrConfig", err)
	}
}

func TestLoad_NoFileFallsBackToDefaults(t *testing.T) {
	// Run from a temp dir with no config anywhere near it
	dir := t.TempDir()
	restore, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer os.Chdir(restore)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("expected default config, got FFmpegPath = %s", cfg.FFmpegPath)
	}
}

func TestSaveAndReloadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.SafetyFactor = 0.9
	cfg.Verbose = true

	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("SaveConfigFile failed: %v", err)
	}

	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if loaded.SafetyFactor != 0.9 {
		t.Errorf("SafetyFactor = %f; want 0.9", loaded.SafetyFactor)
	}
	if !loaded.Verbose {
		t.Error("Verbose should survive a save/load round trip")
	}
}
