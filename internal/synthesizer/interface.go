package synthesizer

import "context"

// Synthesizer converts text to speech, persisting the audio to a file.
type Synthesizer interface {
	// Synthesize renders text as audio and writes it to destPath. The call
	// blocks until the file is fully written.
	Synthesize(ctx context.Context, text, destPath string) error
}
