package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/seojun-park/slidevoice/internal/slides"
)

var slideFilePattern = regexp.MustCompile(`(?i)^slide_(\d+)\.mp3$`)

// Merge concatenates slide MP3s with ffmpeg's concat demuxer, trying a
// stream copy first and re-encoding only when that fails.
func (a *implToolkit) Merge(ctx context.Context, opts MergeOptions) (string, error) {
	if err := a.executor.Available("ffmpeg"); err != nil {
		return "", err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(opts.Dir, "merged_slides.mp3")
	}

	inputs, err := a.collectInputs(ctx, opts, outputPath)
	if err != nil {
		return "", err
	}
	if len(inputs) == 0 {
		return "", fmt.Errorf("no input files matched in %s", opts.Dir)
	}

	if !opts.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("output already exists: %s (use overwrite to replace)", outputPath)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	a.logger.Info(ctx, "Merging %d files into %s", len(inputs), outputPath)

	// Single input fast path: just copy.
	if len(inputs) == 1 {
		data, err := os.ReadFile(inputs[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return "", fmt.Errorf("write output: %w", err)
		}
		return outputPath, nil
	}

	listPath, err := writeConcatList(inputs)
	if err != nil {
		return "", err
	}
	defer os.Remove(listPath)

	// Stream copy avoids a lossy re-encode when the inputs share encoding
	// parameters.
	copyArgs := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	}
	if _, copyErr := a.executor.Execute(ctx, "ffmpeg", copyArgs...); copyErr == nil && outputNonEmpty(outputPath) {
		return outputPath, nil
	}

	a.logger.Warn(ctx, "Stream copy failed or produced empty output, retrying with re-encode")

	bitrate := opts.Bitrate
	if bitrate == "" {
		bitrate = "192k"
	}
	sampleRate := opts.SampleRate
	if sampleRate == 0 {
		sampleRate = 44100
	}

	reencodeArgs := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		"-ar", strconv.Itoa(sampleRate),
		"-ac", "2",
		outputPath,
	}
	if _, err := a.executor.Execute(ctx, "ffmpeg", reencodeArgs...); err != nil {
		return "", fmt.Errorf("merge re-encode: %w", err)
	}
	if !outputNonEmpty(outputPath) {
		return "", fmt.Errorf("merge produced empty output: %s", outputPath)
	}

	return outputPath, nil
}

// collectInputs globs the directory and applies the optional slide
// selection. With a selection, only slide_N.mp3 files count and they are
// ordered by slide number; otherwise all matches in filename order.
func (a *implToolkit) collectInputs(ctx context.Context, opts MergeOptions, outputPath string) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*.mp3"
	}

	paths, err := filepath.Glob(filepath.Join(opts.Dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	// Never feed the output file back into the merge.
	absOut, _ := filepath.Abs(outputPath)
	filtered := paths[:0]
	for _, p := range paths {
		absP, _ := filepath.Abs(p)
		if absP != absOut {
			filtered = append(filtered, p)
		}
	}
	paths = filtered

	if strings.TrimSpace(opts.Selection) == "" {
		return paths, nil
	}

	numbered := make(map[int]string)
	maxNum := 0
	for _, p := range paths {
		num, ok := slideNumber(p)
		if !ok {
			continue
		}
		numbered[num] = p
		if num > maxNum {
			maxNum = num
		}
	}
	if maxNum == 0 {
		return nil, fmt.Errorf("selection %q given but no slide_N.mp3 files found in %s", opts.Selection, opts.Dir)
	}

	sel, invalid := slides.ParseSelection(opts.Selection, maxNum)
	if len(invalid) > 0 {
		a.logger.Warn(ctx, "Ignoring invalid slide selection tokens: %s", strings.Join(invalid, ", "))
	}

	var selected []string
	for _, num := range sel.Indices() {
		if p, ok := numbered[num]; ok {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// slideNumber extracts N from a slide_N.mp3 filename.
func slideNumber(path string) (int, bool) {
	m := slideFilePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return num, true
}

// writeConcatList writes the temp file list the concat demuxer reads.
func writeConcatList(inputs []string) (string, error) {
	tmp, err := os.CreateTemp("", "ffconcat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create concat list: %w", err)
	}

	if _, err := tmp.WriteString(concatListContent(inputs)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write concat list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close concat list: %w", err)
	}

	return tmp.Name(), nil
}

func concatListContent(inputs []string) string {
	var b strings.Builder
	for _, p := range inputs {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}
	return b.String()
}

func outputNonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}
