package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/seojun-park/slidevoice/internal/config"
	"github.com/seojun-park/slidevoice/internal/slides"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

// ProcessFile orchestrates the pipeline for one script: read, segment,
// select, synthesize.
func (p *implProcessor) ProcessFile(ctx context.Context, scriptPath, outputDir, selection string) (Results, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Processing script: %s", scriptPath)

	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	segments := slides.Split(string(raw))
	if len(segments) == 0 {
		p.logger.Info(ctx, "No slides found in %s, nothing to do", scriptPath)
		return Results{}, nil
	}

	p.logger.Info(ctx, "Found %d slides (%s format)", len(segments), slides.DetectFormat(string(raw)))

	sel, invalid := slides.ParseSelection(selection, len(segments))
	if len(invalid) > 0 {
		p.logger.Warn(ctx, "Ignoring invalid slide selection tokens: %s", strings.Join(invalid, ", "))
	}
	segments = sel.Apply(segments)

	results, err := p.Synthesize(ctx, segments, outputDir)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Script done in %s: %d succeeded, %d failed",
		time.Since(startTime).Round(time.Millisecond), results.SucceededCount(), results.FailedCount())

	return results, nil
}

// Synthesize runs the batch loop: one synthesis call per slide, in index
// order, with an optional tempo post-process. A failed slide is recorded
// and the loop continues; only configuration problems abort the batch.
func (p *implProcessor) Synthesize(ctx context.Context, segments []slides.Segment, outputDir string) (Results, error) {
	speed := p.cfg.TTS.Speed
	if speed <= 0 {
		return nil, fmt.Errorf("%w: %g", config.ErrInvalidSpeed, speed)
	}

	if len(segments) == 0 {
		return Results{}, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	results := make(Results, 0, len(segments))
	for _, seg := range segments {
		results = append(results, p.processSlide(ctx, seg, outputDir, speed))
	}

	return results, nil
}

// processSlide produces one slide_NN.mp3 file.
func (p *implProcessor) processSlide(ctx context.Context, seg slides.Segment, outputDir string, speed float64) Result {
	destPath := filepath.Join(outputDir, fmt.Sprintf("slide_%02d.mp3", seg.Index))

	p.logger.Info(ctx, "Processing slide %d -> %s", seg.Index, destPath)

	if err := p.synth.Synthesize(ctx, seg.Text(), destPath); err != nil {
		p.logger.Error(ctx, "Slide %d failed: %v", seg.Index, err)
		return Result{Index: seg.Index, Path: destPath, Err: fmt.Errorf("synthesize slide %d: %w", seg.Index, err)}
	}

	if speed != 1.0 {
		if err := p.changeTempo(ctx, destPath, speed); err != nil {
			if errors.Is(err, executor.ErrToolNotFound) {
				// Soft degradation: the un-scaled audio stays in place.
				p.logger.Warn(ctx, "ffmpeg not available, keeping slide %d at normal speed: %v", seg.Index, err)
			} else {
				p.logger.Error(ctx, "Tempo change for slide %d failed: %v", seg.Index, err)
				return Result{Index: seg.Index, Path: destPath, Err: fmt.Errorf("change tempo of slide %d: %w", seg.Index, err)}
			}
		}
	}

	return Result{Index: seg.Index, Path: destPath}
}
