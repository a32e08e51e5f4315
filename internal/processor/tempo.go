package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ffmpeg's atempo filter only accepts factors in [0.5, 2.0] per stage, so
// larger changes are expressed as a chain of stages.
const (
	atempoStageMin = 0.5
	atempoStageMax = 2.0
)

// changeTempo rewrites the MP3 at path with its tempo scaled by factor,
// preserving pitch. The transform goes through a temp file in the same
// directory and replaces the original with a rename, so the destination is
// never left half-written.
func (p *implProcessor) changeTempo(ctx context.Context, path string, factor float64) error {
	if err := p.executor.Available("ffmpeg"); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "tempo-*.mp3")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", path,
		"-filter:a", atempoChain(factor),
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", p.cfg.FFmpeg.AudioBitrate,
		tmpPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg atempo: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace original: %w", err)
	}

	return nil
}

// atempoChain builds the filter expression for a factor, splitting it into
// stages when it falls outside the per-stage range.
func atempoChain(factor float64) string {
	var stages []string

	for factor > atempoStageMax {
		stages = append(stages, "atempo=2.0")
		factor /= atempoStageMax
	}
	for factor < atempoStageMin {
		stages = append(stages, "atempo=0.5")
		factor /= atempoStageMin
	}

	stages = append(stages, "atempo="+strconv.FormatFloat(factor, 'f', -1, 64))

	return strings.Join(stages, ",")
}
