package models

import (
	"fmt"
	"strings"
)

// SplitResult represents the outcome of extracting a single segment.
//
// It enforces logical consistency: successful results must have an
// output path and no error, while failed results must have an error.
//
// Use NewSplitResultSuccess or NewSplitResultFailure to create validated instances.
type SplitResult struct {
	SegmentIndex int    `json:"segment_index"`
	OutputPath   string `json:"output_path"`
	Success      bool   `json:"success"`
	Error        error  `json:"error"`
}

// NewSplitResultSuccess creates a successful SplitResult with validation.
//
// Returns an error if outputPath is empty or whitespace-only.
func NewSplitResultSuccess(segmentIndex int, outputPath string) (*SplitResult, error) {
	sr := &SplitResult{
		SegmentIndex: segmentIndex,
		OutputPath:   outputPath,
		Success:      true,
		Error:        nil,
	}
	if err := sr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid split result: %w", err)
	}
	return sr, nil
}

// NewSplitResultFailure creates a failed SplitResult.
//
// The splitErr parameter must not be nil. OutputPath may still be set
// when a partial segment file was left on disk.
func NewSplitResultFailure(segmentIndex int, outputPath string, splitErr error) (*SplitResult, error) {
	if splitErr == nil {
		return nil, fmt.Errorf("invalid split result: error cannot be nil for failed result")
	}
	return &SplitResult{
		SegmentIndex: segmentIndex,
		OutputPath:   outputPath,
		Success:      false,
		Error:        splitErr,
	}, nil
}

// Validate checks if the SplitResult has consistent state.
//
// Returns an error if:
//   - Success is true but Error is not nil
//   - Success is false but Error is nil
//   - Success is true but OutputPath is empty
func (sr *SplitResult) Validate() error {
	if sr.SegmentIndex < 0 {
		return fmt.Errorf("segment_index cannot be negative")
	}

	if sr.Success {
		if sr.Error != nil {
			return fmt.Errorf("successful result cannot carry an error")
		}
		if strings.TrimSpace(sr.OutputPath) == "" {
			return fmt.Errorf("successful result must have an output path")
		}
		return nil
	}

	if sr.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	return nil
}
