package audio

import (
	"context"
	"time"
)

// FileDuration is the measured duration of one audio file.
type FileDuration struct {
	Path     string
	Duration time.Duration
}

// MergeOptions control how slide MP3s are merged into one file.
type MergeOptions struct {
	// Dir is the directory holding the input files.
	Dir string

	// Pattern is the glob for input files, default "*.mp3".
	Pattern string

	// Selection restricts inputs to slide_N.mp3 files whose number is
	// selected, ordered by slide number. Empty means all matches in
	// filename order.
	Selection string

	// OutputPath defaults to Dir/merged_slides.mp3.
	OutputPath string

	// Overwrite allows replacing an existing output file.
	Overwrite bool

	// Bitrate and SampleRate apply to the re-encode fallback.
	Bitrate    string
	SampleRate int
}

// Toolkit measures and merges MP3 files through ffprobe/ffmpeg.
type Toolkit interface {
	// Duration returns the playback duration of one audio file.
	Duration(ctx context.Context, path string) (time.Duration, error)

	// ScanDurations measures every file in dir matching pattern, in
	// filename order, and returns the per-file durations and their sum.
	ScanDurations(ctx context.Context, dir, pattern string) ([]FileDuration, time.Duration, error)

	// Merge concatenates the selected files and returns the output path.
	Merge(ctx context.Context, opts MergeOptions) (string, error)
}
