package transcriber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath infers a default output file path from the audio path and the
// response format: talk.mp3 + srt -> talk.srt.
func OutputPath(audioPath, format string) string {
	stem := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	switch format {
	case "srt":
		return stem + ".srt"
	case "vtt":
		return stem + ".vtt"
	case "json", "verbose_json":
		return stem + ".json"
	default:
		return stem + ".txt"
	}
}

// WriteOutput persists a transcription, creating parent directories as
// needed.
func WriteOutput(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write transcription: %w", err)
	}

	return nil
}
