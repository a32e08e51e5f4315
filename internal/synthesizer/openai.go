package synthesizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// ErrInvalidVoice indicates an unrecognized voice name. Voice names are
// checked at construction, before any network interaction.
var ErrInvalidVoice = errors.New("invalid voice")

// voices maps the recognized voice names to their API identifiers.
var voices = map[string]openai.SpeechVoice{
	"alloy":   openai.VoiceAlloy,
	"echo":    openai.VoiceEcho,
	"fable":   openai.VoiceFable,
	"onyx":    openai.VoiceOnyx,
	"nova":    openai.VoiceNova,
	"shimmer": openai.VoiceShimmer,
}

// Voices returns the recognized voice names, for help text and validation
// messages.
func Voices() []string {
	return []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
}

type openAISynthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
}

// NewOpenAI creates a Synthesizer backed by the OpenAI speech endpoint.
// The voice name is validated here so a bad value fails before the first
// request is ever sent.
func NewOpenAI(apiKey, model, voice string) (Synthesizer, error) {
	apiVoice, ok := voices[voice]
	if !ok {
		return nil, fmt.Errorf("%w: %q (choose from %v)", ErrInvalidVoice, voice, Voices())
	}

	return &openAISynthesizer{
		client: openai.NewClient(apiKey),
		model:  openai.SpeechModel(model),
		voice:  apiVoice,
	}, nil
}

// Synthesize requests MP3 audio for the text and streams the response body
// to destPath.
func (s *openAISynthesizer) Synthesize(ctx context.Context, text, destPath string) error {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp); err != nil {
		return fmt.Errorf("write audio to %s: %w", destPath, err)
	}

	return nil
}
