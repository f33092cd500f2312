// Package splitter executes segment plans: each planned segment is
// extracted from the source by a scoped ffmpeg invocation, strictly one
// at a time.
package splitter

import (
	"context"
	"fmt"

	"vsplit/command/extract"
	"vsplit/errs"
	"vsplit/models"
	"vsplit/planner"
)

// Splitter performs lossless stream-copy extraction of planned segments.
//
// The ffmpeg binary path is explicit configuration fixed at
// construction. Extraction is strictly sequential: a segment's process
// is started, waited on, and released before the next one begins.
type Splitter struct {
	ffmpegPath string
	onProgress models.ProgressCallback
}

// NewSplitter creates a Splitter that resolves "ffmpeg" on PATH.
func NewSplitter() *Splitter {
	return NewSplitterWithPath("ffmpeg")
}

// NewSplitterWithPath creates a Splitter using the given ffmpeg binary.
func NewSplitterWithPath(ffmpegPath string) *Splitter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Splitter{ffmpegPath: ffmpegPath}
}

// SetProgressCallback registers a callback receiving copy metrics while
// each segment extracts.
func (s *Splitter) SetProgressCallback(callback models.ProgressCallback) *Splitter {
	s.onProgress = callback
	return s
}

// Split extracts every segment of the plan in order.
//
// The returned results hold one entry per attempted segment, in plan
// order. On the first failed segment the remaining segments are not
// attempted and an ErrSplit error is returned alongside the partial
// results; segment files already written stay on disk.
func (s *Splitter) Split(ctx context.Context, segments []*models.Segment) ([]*models.SplitResult, error) {
	if err := planner.ValidateSegments(segments); err != nil {
		return nil, errs.New(errs.ErrSplit, "refusing to split an invalid plan", err)
	}

	results := make([]*models.SplitResult, 0, len(segments))

	for _, segment := range segments {
		if err := ctx.Err(); err != nil {
			return results, errs.New(errs.ErrSplit, "split interrupted", err)
		}

		builder := extract.NewExtractBuilder(segment).SetFFmpegPath(s.ffmpegPath)
		if s.onProgress != nil {
			builder.SetProgressCallback(s.onProgress)
		}

		if err := builder.Run(ctx); err != nil {
			result, _ := models.NewSplitResultFailure(segment.Index, segment.OutputPath, err)
			results = append(results, result)
			return results, errs.New(errs.ErrSplit,
				fmt.Sprintf("segment %d of %d failed", segment.Index, len(segments)), err)
		}

		result, err := models.NewSplitResultSuccess(segment.Index, segment.OutputPath)
		if err != nil {
			return results, errs.New(errs.ErrSplit, "inconsistent split result", err)
		}
		results = append(results, result)
	}

	return results, nil
}

// DryRun returns the ffmpeg command previews for a plan without
// executing anything.
func (s *Splitter) DryRun(segments []*models.Segment) ([]string, error) {
	if err := planner.ValidateSegments(segments); err != nil {
		return nil, errs.New(errs.ErrSplit, "refusing to preview an invalid plan", err)
	}

	previews := make([]string, 0, len(segments))
	for _, segment := range segments {
		preview, err := extract.NewExtractBuilder(segment).SetFFmpegPath(s.ffmpegPath).DryRun()
		if err != nil {
			return nil, err
		}
		previews = append(previews, preview)
	}

	return previews, nil
}
