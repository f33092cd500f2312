// Package planner computes segment plans: given probed media metadata
// and a byte budget, it derives a per-segment duration from the file's
// average bitrate and produces the ordered list of cut points the
// splitter will extract.
//
// The estimate assumes constant bitrate. Variable-bitrate files and
// keyframe-aligned cutting make real segment sizes approximate, which
// is why a safety factor shaves the budget before the duration is
// derived.
package planner

import (
	"fmt"
	"math"
	"path/filepath"

	"vsplit/errs"
	"vsplit/models"
)

const (
	// DefaultSafetyFactor shrinks the effective byte budget to leave
	// headroom for VBR spikes and keyframe alignment overshoot.
	DefaultSafetyFactor = 0.98

	// MinSafetyFactor is the lowest accepted safety factor.
	MinSafetyFactor = 0.5
)

// Planner computes the segment plan for one source file and a fixed
// byte budget.
type Planner struct {
	sourcePath   string
	budgetBytes  int64
	safetyFactor float64
}

// NewPlanner creates a new Planner for the given source file and byte budget.
func NewPlanner(sourcePath string, budgetBytes int64) *Planner {
	return &Planner{
		sourcePath:   sourcePath,
		budgetBytes:  budgetBytes,
		safetyFactor: DefaultSafetyFactor,
	}
}

// SetSafetyFactor sets the fraction of the budget actually targeted.
// 1.0 disables the headroom entirely.
func (p *Planner) SetSafetyFactor(factor float64) *Planner {
	p.safetyFactor = factor
	return p
}

// PlanSegments computes the ordered segment list for a media file.
//
// A file whose size is at or under the budget yields exactly one
// segment spanning the whole file; the safety factor never applies to
// it. Otherwise segment duration is derived from the file's average
// bitrate so that each segment's stream-copied size lands at or below
// the budget, and the count is the ceiling of duration over segment
// duration.
//
// The final segment is always open-ended (extract to end of source) so
// floating-point drift can never push the last boundary past the true
// end of the file.
//
// Output paths are <outputDir>/<stem>_part<NNN><ext> with NNN
// zero-padded to three digits, starting at 000.
func (p *Planner) PlanSegments(media MediaInfo, outputDir, stem, ext string) ([]*models.Segment, error) {
	if p.sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}
	if media == nil {
		return nil, fmt.Errorf("media info cannot be nil")
	}
	if stem == "" {
		return nil, fmt.Errorf("output stem cannot be empty")
	}
	if p.budgetBytes <= 0 {
		return nil, errs.Newf(errs.ErrInvalidSizeFormat, "budget must be positive, got %d bytes", p.budgetBytes)
	}
	if p.safetyFactor < MinSafetyFactor || p.safetyFactor > 1.0 {
		return nil, errs.Newf(errs.ErrConfig, "safety factor must be in [%.2f, 1.0], got %.2f", MinSafetyFactor, p.safetyFactor)
	}

	duration, err := media.GetDuration()
	if err != nil {
		return nil, errs.New(errs.ErrDegenerateMedia, "failed to get duration", err)
	}
	if duration <= 0 {
		return nil, errs.Newf(errs.ErrDegenerateMedia, "invalid duration: %.2f seconds", duration)
	}

	size, err := media.GetSize()
	if err != nil {
		return nil, errs.New(errs.ErrDegenerateMedia, "failed to get size", err)
	}
	if size <= 0 {
		return nil, errs.Newf(errs.ErrDegenerateMedia, "invalid size: %d bytes", size)
	}

	// A file already at or under the budget needs no cutting: one
	// open-ended segment spanning the whole file. Checked before the
	// safety factor shrinks the budget, so the headroom can never turn
	// an in-budget file into a two-part split.
	if size <= p.budgetBytes {
		return p.buildSegments(1, duration, outputDir, stem, ext)
	}

	// Average bitrate in bytes per second
	bitrate := float64(size) / duration

	// Duration whose stream-copied size stays at or below the budget,
	// under the constant-bitrate assumption
	segmentDuration := p.safetyFactor * float64(p.budgetBytes) / bitrate

	count := int(math.Ceil(duration / segmentDuration))
	if count < 1 {
		count = 1
	}

	return p.buildSegments(count, segmentDuration, outputDir, stem, ext)
}

// buildSegments materializes count contiguous segments of the given
// duration, the last one open-ended.
func (p *Planner) buildSegments(count int, segmentDuration float64, outputDir, stem, ext string) ([]*models.Segment, error) {
	segments := make([]*models.Segment, 0, count)

	for i := 0; i < count; i++ {
		startTime := float64(i) * segmentDuration
		outputPath := filepath.Join(outputDir, OutputName(stem, ext, i))

		var segment *models.Segment
		var err error
		if i == count-1 {
			segment, err = models.NewOpenSegment(i, startTime, p.sourcePath, outputPath)
		} else {
			segment, err = models.NewSegment(i, startTime, segmentDuration, p.sourcePath, outputPath)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid segment %d: %w", i, err)
		}

		segments = append(segments, segment)
	}

	return segments, nil
}

// OutputName derives the output file name for a segment:
// <stem>_part<NNN><ext>, NNN zero-padded to at least three digits.
func OutputName(stem, ext string, index int) string {
	return fmt.Sprintf("%s_part%03d%s", stem, index, ext)
}

// ValidateSegments validates a plan for completeness and correctness:
// every segment valid on its own, indices sequential from zero, exactly
// one open-ended segment in the final position, and consecutive
// segments contiguous within tolerance.
func ValidateSegments(segments []*models.Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("segment list is empty")
	}

	const tolerance = 1e-6

	for i, segment := range segments {
		if err := segment.Validate(); err != nil {
			return fmt.Errorf("segment %d is invalid: %w", i, err)
		}

		if segment.Index != i {
			return fmt.Errorf("segment %d has incorrect index: expected %d, got %d", i, i, segment.Index)
		}

		last := i == len(segments)-1
		if last != segment.OpenEnded {
			return fmt.Errorf("segment %d open-ended flag is wrong: only the final segment extracts to end of source", i)
		}
	}

	// Check for consistent source path
	firstSource := segments[0].SourcePath
	for i, segment := range segments {
		if segment.SourcePath != firstSource {
			return fmt.Errorf("segment %d has different source path: expected %s, got %s",
				i, firstSource, segment.SourcePath)
		}
	}

	// Check contiguity: each segment must start exactly where the
	// previous one ends
	for i := 0; i < len(segments)-1; i++ {
		end, ok := segments[i].EndTime()
		if !ok {
			return fmt.Errorf("segment %d cannot be open-ended before the final segment", i)
		}

		nextStart := segments[i+1].StartTime
		if math.Abs(end-nextStart) > tolerance {
			return fmt.Errorf("segments %d and %d are not contiguous: segment %d ends at %.6f, segment %d starts at %.6f",
				i, i+1, i, end, i+1, nextStart)
		}
	}

	return nil
}
