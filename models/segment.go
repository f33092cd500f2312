// Package models provides core data structures for the split pipeline.
package models

import (
	"fmt"
	"strings"
)

// Segment represents one planned slice of a media file.
//
// Segments are produced by the planner from probed media metadata and a
// byte budget, and consumed immediately by the splitter. Each segment is
// extracted independently via stream copy.
//
// Note: StartTime and Duration use float64 to preserve fractional
// seconds; the actual cut lands on the nearest keyframe at or after
// StartTime, so real boundaries are approximate.
type Segment struct {
	Index      int     `json:"index"`
	StartTime  float64 `json:"start_time"`
	Duration   float64 `json:"duration"`
	OpenEnded  bool    `json:"open_ended"`
	SourcePath string  `json:"source_path"`
	OutputPath string  `json:"output_path"`
}

// NewSegment creates a new bounded Segment with validation.
//
// StartTime and Duration accept float64 to support fractional seconds.
// For the trailing "extract to end of source" segment use NewOpenSegment.
func NewSegment(index int, startTime, duration float64, sourcePath, outputPath string) (*Segment, error) {
	s := &Segment{
		Index:      index,
		StartTime:  startTime,
		Duration:   duration,
		SourcePath: sourcePath,
		OutputPath: outputPath,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment: %w", err)
	}
	return s, nil
}

// NewOpenSegment creates a Segment with no explicit duration, meaning
// "extract from StartTime to the end of the source". Plans end with one
// of these so floating-point drift can never push the final boundary
// past the true end of the file.
func NewOpenSegment(index int, startTime float64, sourcePath, outputPath string) (*Segment, error) {
	s := &Segment{
		Index:      index,
		StartTime:  startTime,
		OpenEnded:  true,
		SourcePath: sourcePath,
		OutputPath: outputPath,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment: %w", err)
	}
	return s, nil
}

// EndTime returns the segment's nominal end position in seconds.
// Open-ended segments have no nominal end; ok is false for those.
func (s *Segment) EndTime() (end float64, ok bool) {
	if s.OpenEnded {
		return 0, false
	}
	return s.StartTime + s.Duration, true
}

// Validate checks if the Segment has valid data.
//
// Returns an error if:
//   - Index is negative
//   - SourcePath or OutputPath is empty or whitespace-only
//   - StartTime is negative
//   - Duration is not positive on a bounded segment
func (s *Segment) Validate() error {
	if s.Index < 0 {
		return fmt.Errorf("index cannot be negative")
	}

	if strings.TrimSpace(s.SourcePath) == "" {
		return fmt.Errorf("source_path cannot be empty")
	}

	if strings.TrimSpace(s.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if s.StartTime < 0 {
		return fmt.Errorf("start_time cannot be negative")
	}

	if !s.OpenEnded && s.Duration <= 0 {
		return fmt.Errorf("duration must be positive for a bounded segment")
	}

	return nil
}
