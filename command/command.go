// Package command provides the Command interface for external ffmpeg
// invocations.
//
// Builders implementing the interface construct argument lists and run
// the external process as a scoped invocation: start, wait for
// completion, release the process handle unconditionally.
package command

import "context"

// TaskType represents the type of external task.
type TaskType string

const (
	TaskTypeExtract TaskType = "extract" // Stream-copy segment extraction
)

// Command represents an ffmpeg command that can be built, executed, or previewed.
//
// Example usage:
//
//	segment, _ := models.NewSegment(0, 0, 20.97, "input.mp4", "out/input_part000.mp4")
//	cmd := extract.NewExtractBuilder(segment)
//
//	// Preview the command
//	preview, _ := cmd.DryRun()
//
//	// Execute the command
//	err := cmd.Run(ctx)
type Command interface {
	// BuildArgs constructs and returns the ffmpeg command arguments as a slice.
	// The returned slice is suitable for exec.CommandContext(ctx, "ffmpeg", args...).
	BuildArgs() []string

	// Run executes the ffmpeg command and blocks until it completes.
	// Cancelling the context kills the process.
	//
	// Returns an error if the command fails to execute or returns a
	// non-zero exit code.
	Run(ctx context.Context) error

	// DryRun returns the ffmpeg command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	DryRun() (string, error)

	// GetTaskType returns the type of task.
	GetTaskType() TaskType

	// GetInputPath returns the primary input file path for this command.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	GetOutputPath() string
}
