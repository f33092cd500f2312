package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewSplitProgress(t *testing.T) {
	progress := NewSplitProgress(120.0)

	if progress.TotalDuration != 120.0 {
		t.Errorf("TotalDuration = %f; want 120.0", progress.TotalDuration)
	}
	if progress.State != ProgressStateQueued {
		t.Errorf("State = %s; want %s", progress.State, ProgressStateQueued)
	}
	if progress.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
}

func TestSplitProgress_CalculateProgress(t *testing.T) {
	tests := []struct {
		name           string
		totalDuration  float64
		currentSeconds float64
		expected       float64
	}{
		{"halfway", 100.0, 50.0, 50.0},
		{"complete", 100.0, 100.0, 100.0},
		{"overshoot clamped", 100.0, 150.0, 100.0},
		{"start", 100.0, 0.0, 0.0},
		{"open-ended stays zero", 0.0, 50.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := NewSplitProgress(tt.totalDuration)
			progress.CalculateProgress(tt.currentSeconds)

			if progress.Progress != tt.expected {
				t.Errorf("Progress = %f; want %f", progress.Progress, tt.expected)
			}
		})
	}
}

func TestSplitProgress_EstimatedTimeRemaining(t *testing.T) {
	progress := NewSplitProgress(100.0)
	progress.StartTime = time.Now().Add(-10 * time.Second)
	progress.Speed = 2.0
	progress.CalculateProgress(50.0)

	eta := progress.EstimatedTimeRemaining()
	if eta <= 0 {
		t.Errorf("expected positive ETA at 50%% progress, got %v", eta)
	}

	// No speed yet: ETA is unknown
	fresh := NewSplitProgress(100.0)
	if fresh.EstimatedTimeRemaining() != 0 {
		t.Error("expected zero ETA before any progress")
	}
}

func TestSplitProgress_FormatSummary(t *testing.T) {
	progress := NewSplitProgress(100.0)
	progress.Speed = 25.5
	progress.Size = "2048kB"
	progress.CalculateProgress(40.0)

	summary := progress.FormatSummary()

	if !strings.Contains(summary, "40.0%") {
		t.Errorf("summary missing percentage: %s", summary)
	}
	if !strings.Contains(summary, "25.50x") {
		t.Errorf("summary missing speed: %s", summary)
	}
	if !strings.Contains(summary, "2048kB") {
		t.Errorf("summary missing size: %s", summary)
	}
}
