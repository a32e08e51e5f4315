package synthesizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type mockSynth struct {
	failTexts map[string]bool
}

// NewMock creates a Synthesizer that writes a placeholder file instead of
// calling any API. Texts listed in failTexts produce an error, which lets
// tests exercise per-segment failure handling.
func NewMock(failTexts ...string) Synthesizer {
	fail := make(map[string]bool, len(failTexts))
	for _, t := range failTexts {
		fail[t] = true
	}
	return &mockSynth{failTexts: fail}
}

func (m *mockSynth) Synthesize(ctx context.Context, text, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.failTexts[text] {
		return fmt.Errorf("mock synthesis failure for %q", text)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(text), 0644)
}
