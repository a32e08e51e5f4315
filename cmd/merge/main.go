package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seojun-park/slidevoice/internal/audio"
	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

func main() {
	ctx := context.Background()

	var (
		dir       string
		pattern   string
		slidesOpt string
		out       string
		overwrite bool
		bitrate   string
	)

	flag.StringVar(&dir, "dir", "output", "directory containing .mp3 files")
	flag.StringVar(&pattern, "pattern", "*.mp3", "glob pattern to match files")
	flag.StringVar(&slidesOpt, "slides", "", `slide selection like "1", "2,4", "3-5" (merges all files if omitted)`)
	flag.StringVar(&out, "out", "", "output MP3 path (default <dir>/merged_slides.mp3)")
	flag.BoolVar(&overwrite, "overwrite", false, "overwrite the output file if it already exists")
	flag.StringVar(&bitrate, "bitrate", "192k", "audio bitrate for the re-encode fallback")
	flag.Parse()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: directory not found: %s\n", dir)
		os.Exit(1)
	}

	tk := audio.New(executor.New(), logger.New("info"))

	outputPath, err := tk.Merge(ctx, audio.MergeOptions{
		Dir:        dir,
		Pattern:    pattern,
		Selection:  slidesOpt,
		OutputPath: out,
		Overwrite:  overwrite,
		Bitrate:    bitrate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged MP3 saved to: %s\n", outputPath)
}
