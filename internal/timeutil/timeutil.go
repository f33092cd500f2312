// Package timeutil provides time formatting utilities for ffmpeg arguments.
package timeutil

import (
	"fmt"
	"math"
)

// FormatSeconds converts seconds to HH:MM:SS.MS format for ffmpeg.
//
// This format is used for ffmpeg time parameters like -ss (seek start)
// and -t (duration). Supports fractional seconds for precise timing.
// The value is rounded to centiseconds before decomposition so the
// seconds field can never round up to 60; 59.999 carries into the
// minute instead of printing "00:00:60.00".
//
// Example:
//
//	FormatSeconds(0)        // "00:00:00.00"
//	FormatSeconds(90)       // "00:01:30.00"
//	FormatSeconds(3661)     // "01:01:01.00"
//	FormatSeconds(20.97152) // "00:00:20.97"
func FormatSeconds(seconds float64) string {
	centis := int64(math.Round(seconds * 100))
	hours := centis / 360000
	minutes := (centis % 360000) / 6000
	secs := float64(centis%6000) / 100
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}
