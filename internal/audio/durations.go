package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Duration asks ffprobe for the audio stream duration, falling back to the
// container duration when the stream does not report one.
func (a *implToolkit) Duration(ctx context.Context, path string) (time.Duration, error) {
	if err := a.executor.Available("ffprobe"); err != nil {
		return 0, err
	}

	// Stream duration first, it is the more precise of the two.
	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err == nil {
		if d, ok := parseProbeDuration(out); ok {
			return d, nil
		}
	}

	out, err = a.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("probe duration of %s: %w", path, err)
	}

	if d, ok := parseProbeDuration(out); ok {
		return d, nil
	}

	return 0, fmt.Errorf("no duration reported for %s", path)
}

// ScanDurations measures every matching file and totals the results. A file
// that cannot be measured is reported with zero duration rather than
// aborting the scan.
func (a *implToolkit) ScanDurations(ctx context.Context, dir, pattern string) ([]FileDuration, time.Duration, error) {
	if pattern == "" {
		pattern = "*.mp3"
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, 0, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	var total time.Duration
	results := make([]FileDuration, 0, len(paths))
	for _, path := range paths {
		d, err := a.Duration(ctx, path)
		if err != nil {
			a.logger.Warn(ctx, "Could not read duration of %s: %v", path, err)
			d = 0
		}
		results = append(results, FileDuration{Path: path, Duration: d})
		total += d
	}

	return results, total, nil
}

// parseProbeDuration reads the first line of ffprobe output as seconds.
func parseProbeDuration(out string) (time.Duration, bool) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")

	seconds, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || seconds <= 0 {
		return 0, false
	}

	return time.Duration(seconds * float64(time.Second)), true
}

// FormatDuration renders a duration as MM:SS.mmm, with hours prepended when
// nonzero.
func FormatDuration(d time.Duration) string {
	totalMs := d.Round(time.Millisecond).Milliseconds()

	hrs := totalMs / 3_600_000
	rem := totalMs % 3_600_000
	mins := rem / 60_000
	rem %= 60_000
	secs := rem / 1000
	ms := rem % 1000

	if hrs > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", hrs, mins, secs, ms)
	}
	return fmt.Sprintf("%02d:%02d.%03d", mins, secs, ms)
}
