package models

import (
	"fmt"
	"time"
)

// SplitProgress represents real-time metrics from a running ffmpeg
// stream-copy extraction, parsed from its stderr stats line.
type SplitProgress struct {
	// Current position in the segment
	Frame       int64  // Current frame number
	CurrentTime string // Current timestamp (HH:MM:SS.MS)

	// Performance metrics
	Speed float64 // Copy speed multiplier (stream copy is typically far above realtime)

	// Size information
	Size string // Current output file size (e.g., "1024kB")

	// Progress calculation
	TotalDuration float64 // Segment duration in seconds (0 for open-ended segments)
	Progress      float64 // Percentage complete (0-100)

	// Metadata
	State     ProgressState // Current state of the extraction
	StartTime time.Time     // When the extraction started
	UpdatedAt time.Time     // Last update timestamp
}

// ProgressState represents the current state of a segment extraction
type ProgressState string

const (
	ProgressStateQueued    ProgressState = "queued"    // Waiting for its turn in the plan
	ProgressStateCopying   ProgressState = "copying"   // ffmpeg actively extracting
	ProgressStateCompleted ProgressState = "completed" // Successfully finished
	ProgressStateFailed    ProgressState = "failed"    // Encountered an error
	ProgressStateCancelled ProgressState = "cancelled" // Run was interrupted
)

// ProgressCallback is a function that receives progress updates during extraction
type ProgressCallback func(progress *SplitProgress)

// NewSplitProgress creates a new progress tracker for a segment of the
// given duration. Pass 0 for open-ended segments; percentage stays 0
// but position and speed still update.
func NewSplitProgress(totalDuration float64) *SplitProgress {
	return &SplitProgress{
		TotalDuration: totalDuration,
		State:         ProgressStateQueued,
		StartTime:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CalculateProgress updates the progress percentage based on current position
func (sp *SplitProgress) CalculateProgress(currentSeconds float64) {
	if sp.TotalDuration > 0 {
		sp.Progress = (currentSeconds / sp.TotalDuration) * 100
		if sp.Progress > 100 {
			sp.Progress = 100
		}
	}
	sp.UpdatedAt = time.Now()
}

// EstimatedTimeRemaining calculates ETA based on elapsed time and percentage
func (sp *SplitProgress) EstimatedTimeRemaining() time.Duration {
	if sp.Speed <= 0 || sp.Progress <= 0 {
		return 0
	}

	elapsed := time.Since(sp.StartTime)
	totalEstimated := time.Duration(float64(elapsed) / (sp.Progress / 100))
	remaining := totalEstimated - elapsed

	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatSummary returns a human-readable summary of the progress
func (sp *SplitProgress) FormatSummary() string {
	return fmt.Sprintf(
		"Progress: %.1f%% | Speed: %.2fx | Size: %s | ETA: %s",
		sp.Progress,
		sp.Speed,
		sp.Size,
		formatDuration(sp.EstimatedTimeRemaining()),
	)
}

// formatDuration converts a duration to a human-readable string
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "calculating..."
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	seconds = seconds % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}
