package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSplitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SplitError
		expected string
	}{
		{
			name:     "with cause",
			err:      New(ErrProbe, "ffprobe failed", errors.New("exit status 1")),
			expected: "[PROBE] ffprobe failed: exit status 1",
		},
		{
			name:     "without cause",
			err:      New(ErrInvalidSizeFormat, "unknown unit: XB", nil),
			expected: "[INVALID_SIZE_FORMAT] unknown unit: XB",
		},
		{
			name:     "formatted",
			err:      Newf(ErrDegenerateMedia, "invalid duration: %.2f", -1.0),
			expected: "[DEGENERATE_MEDIA] invalid duration: -1.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestSplitError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrSplit, "segment 3 failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{"matching type", New(ErrProbe, "x", nil), ErrProbe, true},
		{"different type", New(ErrProbe, "x", nil), ErrSplit, false},
		{"nil error", nil, ErrProbe, false},
		{"plain error", errors.New("plain"), ErrProbe, false},
		{"wrapped", fmt.Errorf("outer: %w", New(ErrOutputCollision, "x", nil)), ErrOutputCollision, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsType(tt.err, tt.errType); got != tt.expected {
				t.Errorf("IsType() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid size format is fatal", New(ErrInvalidSizeFormat, "x", nil), true},
		{"config is fatal", New(ErrConfig, "x", nil), true},
		{"probe is per-file", New(ErrProbe, "x", nil), false},
		{"split is per-file", New(ErrSplit, "x", nil), false},
		{"degenerate media is per-file", New(ErrDegenerateMedia, "x", nil), false},
		{"output collision is per-file", New(ErrOutputCollision, "x", nil), false},
		{"plain error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.expected {
				t.Errorf("IsFatal() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"probe", New(ErrProbe, "x", nil), "probe_failed"},
		{"split", New(ErrSplit, "x", nil), "split_failed"},
		{"collision", New(ErrOutputCollision, "x", nil), "output_collision"},
		{"degenerate", New(ErrDegenerateMedia, "x", nil), "degenerate_media"},
		{"plain error", errors.New("plain"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.expected {
				t.Errorf("Code() = %q; want %q", got, tt.expected)
			}
			if strings.ToLower(tt.expected) != tt.expected {
				t.Errorf("codes must be lowercase, got %q", tt.expected)
			}
		})
	}
}
