// Package ffprobe extracts media metadata using the ffprobe
// command-line tool.
//
// Only container-level format metadata is read (duration, size); no
// frame data is ever decoded, so probing is fast even on large files.
package ffprobe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"

	"vsplit/errs"
)

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file.
//
// It implements planner.MediaInfo, so probe output feeds straight into
// segment planning without coupling the planner to ffprobe.
type ProbeResult struct {
	Format Format `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, errs.Newf(errs.ErrProbe, "duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, errs.New(errs.ErrProbe, "failed to parse duration "+strconv.Quote(pr.Format.Duration), err)
	}

	return duration, nil
}

// GetSize returns the size of the media file in bytes.
//
// Returns an error if the size cannot be parsed.
func (pr *ProbeResult) GetSize() (int64, error) {
	if pr.Format.Size == "" {
		return 0, errs.Newf(errs.ErrProbe, "size not available in format metadata")
	}

	size, err := strconv.ParseInt(pr.Format.Size, 10, 64)
	if err != nil {
		return 0, errs.New(errs.ErrProbe, "failed to parse size "+strconv.Quote(pr.Format.Size), err)
	}

	return size, nil
}

// GetBitrate returns the container-reported average bitrate in bits per
// second, or 0 when the container does not report one.
func (pr *ProbeResult) GetBitrate() float64 {
	if pr.Format.BitRate == "" {
		return 0
	}
	bitrate, err := strconv.ParseFloat(pr.Format.BitRate, 64)
	if err != nil {
		return 0
	}
	return bitrate
}

// Prober runs ffprobe against media files. The binary path is explicit
// configuration fixed at construction rather than ambient state.
type Prober struct {
	binaryPath string
}

// NewProber creates a Prober that resolves "ffprobe" on PATH.
func NewProber() *Prober {
	return NewProberWithPath("ffprobe")
}

// NewProberWithPath creates a Prober using the given ffprobe binary.
func NewProberWithPath(binaryPath string) *Prober {
	if binaryPath == "" {
		binaryPath = "ffprobe"
	}
	return &Prober{binaryPath: binaryPath}
}

// Probe analyzes a media file and extracts its format metadata.
//
// The function executes ffprobe with JSON output format and parses the
// result to extract duration and size.
//
// Example:
//
//	prober := ffprobe.NewProber()
//	result, err := prober.Probe(ctx, "/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := result.GetDuration()
//	size, _ := result.GetSize()
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, errs.Newf(errs.ErrProbe, "source path cannot be empty")
	}

	// -v error: only report real problems
	// -print_format json: output in JSON format
	// -show_format: container metadata (duration, size) without decoding
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		sourcePath,
	}

	cmd := exec.CommandContext(ctx, p.binaryPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errs.New(errs.ErrProbe, "ffprobe failed for "+sourcePath+" (output: "+string(output)+")", err)
	}

	return parseProbeOutput(output)
}

// parseProbeOutput unmarshals raw ffprobe JSON into a ProbeResult.
func parseProbeOutput(output []byte) (*ProbeResult, error) {
	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, errs.New(errs.ErrProbe, "failed to parse ffprobe JSON output", err)
	}
	return &result, nil
}
