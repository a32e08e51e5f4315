package transcriber

import "context"

// Transcriber converts an audio file back to text.
type Transcriber interface {
	// Transcribe returns the transcription of the audio file, formatted
	// according to the configured response format.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Options control a transcription request.
type Options struct {
	// Language is an optional ISO-639-1 hint, e.g. "ko" or "en".
	Language string

	// Prompt is an optional hint for domain-specific terms.
	Prompt string

	// Format is one of text, srt, vtt, json, verbose_json.
	Format string

	// Temperature is the decoding temperature.
	Temperature float64
}
