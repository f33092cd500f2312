package models

import (
	"errors"
	"testing"
)

func TestNewSplitResultSuccess(t *testing.T) {
	result, err := NewSplitResultSuccess(0, "/out/video_part000.mp4")
	if err != nil {
		t.Fatalf("NewSplitResultSuccess failed: %v", err)
	}

	if !result.Success {
		t.Error("expected Success to be true")
	}
	if result.Error != nil {
		t.Errorf("expected nil Error, got %v", result.Error)
	}
	if result.OutputPath != "/out/video_part000.mp4" {
		t.Errorf("OutputPath = %s; want /out/video_part000.mp4", result.OutputPath)
	}
}

func TestNewSplitResultSuccess_EmptyOutputPath(t *testing.T) {
	if _, err := NewSplitResultSuccess(0, "   "); err == nil {
		t.Error("expected error for whitespace-only output path")
	}
}

func TestNewSplitResultFailure(t *testing.T) {
	cause := errors.New("ffmpeg exited with status 1")
	result, err := NewSplitResultFailure(2, "/out/video_part002.mp4", cause)
	if err != nil {
		t.Fatalf("NewSplitResultFailure failed: %v", err)
	}

	if result.Success {
		t.Error("expected Success to be false")
	}
	if result.Error != cause {
		t.Errorf("Error = %v; want %v", result.Error, cause)
	}
	// Failed segments may leave a partial file behind; the path is kept
	// so the user can find and remove it.
	if result.OutputPath != "/out/video_part002.mp4" {
		t.Errorf("OutputPath = %s; want the partial output path", result.OutputPath)
	}
}

func TestNewSplitResultFailure_NilError(t *testing.T) {
	if _, err := NewSplitResultFailure(0, "", nil); err == nil {
		t.Error("expected error when failure has nil cause")
	}
}

func TestSplitResult_Validate(t *testing.T) {
	tests := []struct {
		name    string
		result  SplitResult
		wantErr bool
	}{
		{"valid success", SplitResult{SegmentIndex: 0, OutputPath: "out.mp4", Success: true}, false},
		{"valid failure", SplitResult{SegmentIndex: 0, Success: false, Error: errors.New("x")}, false},
		{"success with error", SplitResult{SegmentIndex: 0, OutputPath: "out.mp4", Success: true, Error: errors.New("x")}, true},
		{"success without output", SplitResult{SegmentIndex: 0, Success: true}, true},
		{"failure without error", SplitResult{SegmentIndex: 0, Success: false}, true},
		{"negative index", SplitResult{SegmentIndex: -1, OutputPath: "out.mp4", Success: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() returned unexpected error: %v", err)
			}
		})
	}
}
