package planner

// MediaInfo represents the minimal media file metadata needed for
// segment planning.
//
// This interface decouples the planner from specific probing
// implementations (ffprobe, mediainfo, etc.), making it more testable
// and flexible.
type MediaInfo interface {
	// GetDuration returns the media file duration in seconds.
	// Returns an error if duration is not available or invalid.
	GetDuration() (float64, error)

	// GetSize returns the media file size in bytes.
	// Returns an error if size is not available or invalid.
	GetSize() (int64, error)
}
