package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// ErrInvalidFormat indicates an unrecognized response format. Formats are
// checked at construction, before any network interaction.
var ErrInvalidFormat = errors.New("invalid response format")

var formats = map[string]openai.AudioResponseFormat{
	"text":         openai.AudioResponseFormatText,
	"srt":          openai.AudioResponseFormatSRT,
	"vtt":          openai.AudioResponseFormatVTT,
	"json":         openai.AudioResponseFormatJSON,
	"verbose_json": openai.AudioResponseFormatVerboseJSON,
}

// Formats returns the recognized response format names.
func Formats() []string {
	return []string{"text", "srt", "vtt", "json", "verbose_json"}
}

type openAITranscriber struct {
	client *openai.Client
	model  string
	opts   Options
	format openai.AudioResponseFormat
}

// NewOpenAI creates a Transcriber backed by the OpenAI transcription
// endpoint. An empty format defaults to text.
func NewOpenAI(apiKey, model string, opts Options) (Transcriber, error) {
	if opts.Format == "" {
		opts.Format = "text"
	}

	apiFormat, ok := formats[opts.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (choose from %v)", ErrInvalidFormat, opts.Format, Formats())
	}

	return &openAITranscriber{
		client: openai.NewClient(apiKey),
		model:  model,
		opts:   opts,
		format: apiFormat,
	}, nil
}

func (t *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file: %w", err)
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       t.model,
		FilePath:    audioPath,
		Language:    t.opts.Language,
		Prompt:      t.opts.Prompt,
		Temperature: float32(t.opts.Temperature),
		Format:      t.format,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	// The SDK parses json formats into a struct; render them back out so
	// the caller always gets the format it asked for.
	switch t.opts.Format {
	case "json", "verbose_json":
		data, err := json.Marshal(resp)
		if err != nil {
			return "", fmt.Errorf("marshal transcription: %w", err)
		}
		return string(data), nil
	default:
		return resp.Text, nil
	}
}
