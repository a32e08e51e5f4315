package processor

import (
	"context"

	"github.com/seojun-park/slidevoice/internal/slides"
)

// Processor turns a script into a set of per-slide audio files.
type Processor interface {
	// ProcessFile reads a script file, segments it, applies the slide
	// selection (empty string selects everything) and synthesizes the
	// result into outputDir.
	ProcessFile(ctx context.Context, scriptPath, outputDir, selection string) (Results, error)

	// Synthesize runs the batch loop over already-segmented slides.
	Synthesize(ctx context.Context, segments []slides.Segment, outputDir string) (Results, error)
}
