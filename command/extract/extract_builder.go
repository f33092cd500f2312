// Package extract builds ffmpeg commands that losslessly extract one
// planned segment from a source file.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"vsplit/command"
	"vsplit/errs"
	"vsplit/ffmpeg"
	"vsplit/internal/timeutil"
	"vsplit/models"
)

// ExtractBuilder builds ffmpeg stream-copy commands for a single segment.
//
// The cut is approximate: -ss before -i seeks to the nearest keyframe
// at or after the nominal start, so real segment boundaries and sizes
// deviate from the plan. That is inherent to lossless cutting.
type ExtractBuilder struct {
	segment    *models.Segment
	ffmpegPath string
	onProgress models.ProgressCallback
}

// NewExtractBuilder creates a new ExtractBuilder for a planned segment,
// resolving "ffmpeg" on PATH.
func NewExtractBuilder(segment *models.Segment) *ExtractBuilder {
	return &ExtractBuilder{
		segment:    segment,
		ffmpegPath: "ffmpeg",
	}
}

// SetFFmpegPath sets the ffmpeg binary to invoke.
func (e *ExtractBuilder) SetFFmpegPath(path string) *ExtractBuilder {
	if path != "" {
		e.ffmpegPath = path
	}
	return e
}

// SetProgressCallback registers a callback invoked with copy metrics
// parsed from ffmpeg stderr while the extraction runs.
func (e *ExtractBuilder) SetProgressCallback(callback models.ProgressCallback) *ExtractBuilder {
	e.onProgress = callback
	return e
}

// BuildArgs constructs the ffmpeg command arguments for segment extraction.
// Uses -c copy for fast stream copying without re-encoding.
func (e *ExtractBuilder) BuildArgs() []string {
	args := []string{
		"-nostdin",
		"-y", // output dirs are reused, so existing parts get overwritten
		"-ss", timeutil.FormatSeconds(e.segment.StartTime),
		"-i", e.segment.SourcePath,
	}

	// The final segment has no -t: it extracts to the end of the source
	if !e.segment.OpenEnded {
		args = append(args, "-t", timeutil.FormatSeconds(e.segment.Duration))
	}

	args = append(args,
		"-map", "0", // Map all streams
		"-c", "copy", // Copy streams without re-encoding (very fast)
		"-avoid_negative_ts", "make_zero", // Rebase timestamps for clean playback
		e.segment.OutputPath,
	)

	return args
}

// Run executes the extraction command and blocks until it completes.
func (e *ExtractBuilder) Run(ctx context.Context) error {
	if err := e.segment.Validate(); err != nil {
		return errs.New(errs.ErrSplit, "cannot extract invalid segment", err)
	}

	args := e.BuildArgs()
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	if e.onProgress == nil {
		output, err := cmd.CombinedOutput()
		if err != nil {
			return errs.New(errs.ErrSplit,
				fmt.Sprintf("segment %d extraction failed (output: %s)", e.segment.Index, string(output)), err)
		}
		return nil
	}

	return e.runWithProgress(ctx, cmd)
}

// runWithProgress streams ffmpeg stderr through the progress parser
// while the process runs, keeping a copy of the output for error
// reporting.
func (e *ExtractBuilder) runWithProgress(ctx context.Context, cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return errs.New(errs.ErrSplit, "failed to open ffmpeg stderr", err)
	}

	if err := cmd.Start(); err != nil {
		return errs.New(errs.ErrSplit, "failed to start ffmpeg", err)
	}

	progress := models.NewSplitProgress(e.segment.Duration)
	parser := ffmpeg.NewProgressParser()

	// Parse errors are non-fatal; the exit code decides success
	_ = parser.StreamProgress(io.TeeReader(stderrPipe, &stderr), progress, e.onProgress)

	if err := cmd.Wait(); err != nil {
		progress.State = models.ProgressStateFailed
		if ctx.Err() != nil {
			progress.State = models.ProgressStateCancelled
		}
		return errs.New(errs.ErrSplit,
			fmt.Sprintf("segment %d extraction failed (output: %s)", e.segment.Index, stderr.String()), err)
	}

	progress.State = models.ProgressStateCompleted
	progress.CalculateProgress(progress.TotalDuration)
	e.onProgress(progress)

	return nil
}

// DryRun returns the command string without executing.
func (e *ExtractBuilder) DryRun() (string, error) {
	if err := e.segment.Validate(); err != nil {
		return "", fmt.Errorf("cannot build command for invalid segment: %w", err)
	}
	return fmt.Sprintf("%s %s", e.ffmpegPath, strings.Join(e.BuildArgs(), " ")), nil
}

// GetTaskType returns the task type for this command.
func (e *ExtractBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeExtract
}

// GetInputPath returns the source media file path.
func (e *ExtractBuilder) GetInputPath() string {
	return e.segment.SourcePath
}

// GetOutputPath returns the segment output path.
func (e *ExtractBuilder) GetOutputPath() string {
	return e.segment.OutputPath
}

// Compile-time check that ExtractBuilder satisfies the Command interface.
var _ command.Command = (*ExtractBuilder)(nil)
