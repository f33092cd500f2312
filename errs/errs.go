// Package errs provides typed errors for the split pipeline.
//
// Each error carries a category from the fixed taxonomy below, so the
// batch orchestrator can decide whether a failure aborts the whole run
// (bad size budget, bad config) or only the file being processed
// (probe, plan, split, output collision).
package errs

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrInvalidSizeFormat indicates the chunk size string could not be parsed
	ErrInvalidSizeFormat ErrorType = iota
	// ErrProbe indicates ffprobe failed or its output could not be parsed
	ErrProbe
	// ErrDegenerateMedia indicates media metadata unusable for planning (zero duration/size)
	ErrDegenerateMedia
	// ErrSplit indicates the external splitter failed mid-file
	ErrSplit
	// ErrOutputCollision indicates the output directory path is blocked by a non-directory
	ErrOutputCollision
	// ErrConfig indicates a configuration error
	ErrConfig
)

// SplitError is the base error type for all vsplit errors
type SplitError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error returns the error message
func (e *SplitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *SplitError) Unwrap() error {
	return e.Cause
}

// New creates a new SplitError
func New(errType ErrorType, message string, cause error) *SplitError {
	return &SplitError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Newf creates a new SplitError with a formatted message and no cause
func Newf(errType ErrorType, format string, args ...interface{}) *SplitError {
	return &SplitError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var splitErr *SplitError
	if err == nil {
		return false
	}
	if errors.As(err, &splitErr) {
		return splitErr.Type == errType
	}
	return false
}

// IsFatal returns true if the error should abort the whole run rather
// than only the file being processed. Per-file errors (probe, split,
// degenerate media, output collision) let the batch continue.
func IsFatal(err error) bool {
	var splitErr *SplitError
	if !errors.As(err, &splitErr) {
		return false
	}

	switch splitErr.Type {
	case ErrInvalidSizeFormat, ErrConfig:
		return true
	default:
		return false
	}
}

// Code returns the stable machine-readable code for an error type,
// used in run report items.
func Code(err error) string {
	var splitErr *SplitError
	if !errors.As(err, &splitErr) {
		return "internal"
	}
	return errorTypeCode(splitErr.Type)
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrInvalidSizeFormat:
		return "INVALID_SIZE_FORMAT"
	case ErrProbe:
		return "PROBE"
	case ErrDegenerateMedia:
		return "DEGENERATE_MEDIA"
	case ErrSplit:
		return "SPLIT"
	case ErrOutputCollision:
		return "OUTPUT_COLLISION"
	case ErrConfig:
		return "CONFIG"
	default:
		return "UNKNOWN"
	}
}

func errorTypeCode(et ErrorType) string {
	switch et {
	case ErrInvalidSizeFormat:
		return "invalid_size_format"
	case ErrProbe:
		return "probe_failed"
	case ErrDegenerateMedia:
		return "degenerate_media"
	case ErrSplit:
		return "split_failed"
	case ErrOutputCollision:
		return "output_collision"
	case ErrConfig:
		return "config_invalid"
	default:
		return "unknown"
	}
}
