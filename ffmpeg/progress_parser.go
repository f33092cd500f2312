// Package ffmpeg parses progress output from running ffmpeg processes.
package ffmpeg

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"vsplit/models"
)

// ProgressParser parses ffmpeg stderr output for stream-copy metrics
type ProgressParser struct {
	frameRegex *regexp.Regexp
	sizeRegex  *regexp.Regexp
	timeRegex  *regexp.Regexp
	speedRegex *regexp.Regexp
}

// NewProgressParser creates a new parser for ffmpeg progress output
func NewProgressParser() *ProgressParser {
	return &ProgressParser{
		// Match both "frame=123" and "frame= 123" formats
		frameRegex: regexp.MustCompile(`^frame=\s*(\d+)`),
		sizeRegex:  regexp.MustCompile(`(?:^|\s)(?:total_)?size=\s*([0-9]+)`),
		timeRegex:  regexp.MustCompile(`(?:^|\s)(?:out_)?time=\s*([0-9:\.]+)`),
		// Match speed in both formats: "^speed=X.Xx" (multi-line) and "speed=X.Xx" (embedded in stats line)
		speedRegex: regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// ParseLine parses a single line of ffmpeg stderr output and updates the progress.
// Handles both -stats format (all data on one line) and -progress format (key=value per line).
func (pp *ProgressParser) ParseLine(line string, progress *models.SplitProgress) bool {
	// Skip empty lines and progress markers
	line = strings.TrimSpace(line)
	if line == "" || line == "progress=continue" || line == "progress=end" {
		return false
	}

	updated := false

	// Parse frame number
	if matches := pp.frameRegex.FindStringSubmatch(line); len(matches) > 1 {
		if frame, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			progress.Frame = frame
			updated = true
		}
	}

	// Parse size
	if matches := pp.sizeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Size = matches[1] + "kB"
		updated = true
	}

	// Parse current time
	if matches := pp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.CurrentTime = matches[1]
		// Convert time to seconds for progress calculation
		if seconds := pp.timeToSeconds(matches[1]); seconds > 0 {
			progress.CalculateProgress(seconds)
		}
		updated = true
	}

	// Parse speed
	if matches := pp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.Speed = speed
			updated = true
		}
	}

	return updated
}

// StreamProgress reads ffmpeg stderr and continuously updates progress
func (pp *ProgressParser) StreamProgress(reader io.Reader, progress *models.SplitProgress, callback models.ProgressCallback) error {
	scanner := bufio.NewScanner(reader)

	// ffmpeg writes progress updates on the same line using \r (carriage return)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	scanner.Split(scanLinesOrCR)

	for scanner.Scan() {
		line := scanner.Text()

		if pp.ParseLine(line, progress) {
			progress.State = models.ProgressStateCopying
			if callback != nil {
				callback(progress)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ffmpeg output: %w", err)
	}

	return nil
}

// scanLinesOrCR splits on both \n and \r so the stats line ffmpeg
// overwrites in place is seen as a stream of separate updates.
func scanLinesOrCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for i, b := range data {
		if b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// timeToSeconds converts ffmpeg time format (HH:MM:SS.MS) to seconds
func (pp *ProgressParser) timeToSeconds(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}
