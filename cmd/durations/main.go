package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seojun-park/slidevoice/internal/audio"
	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

func main() {
	ctx := context.Background()

	var (
		dir     string
		pattern string
	)

	flag.StringVar(&dir, "dir", "output", "directory containing .mp3 files")
	flag.StringVar(&pattern, "pattern", "*.mp3", "glob pattern to match files")
	flag.Parse()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", dir)
		os.Exit(1)
	}

	exec := executor.New()
	if err := exec.Available("ffprobe"); errors.Is(err, executor.ErrToolNotFound) {
		fmt.Fprintln(os.Stderr, "Error: ffprobe not found on PATH. Install ffmpeg to measure durations (https://ffmpeg.org/download.html).")
		os.Exit(1)
	}

	tk := audio.New(exec, logger.New("warn"))

	results, total, err := tk.ScanDurations(ctx, dir, pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Printf("No files matched pattern %q in %s\n", pattern, dir)
		return
	}

	fmt.Printf("Scanning %d file(s) in %s matching %q:\n", len(results), dir, pattern)
	for _, r := range results {
		fmt.Printf("- %s: %s\n", filepath.Base(r.Path), audio.FormatDuration(r.Duration))
	}

	fmt.Println("\nTotal duration:")
	fmt.Printf("= %s (%.3f seconds)\n", audio.FormatDuration(total), total.Seconds())
}
