package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

// fakeExecutor scripts the responses of ffprobe/ffmpeg invocations.
type fakeExecutor struct {
	availableErr error
	run          func(call int, name string, args []string) (string, error)
	calls        [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	call := len(f.calls)
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.run == nil {
		return "", nil
	}
	return f.run(call, name, args)
}

func (f *fakeExecutor) Available(name string) error {
	return f.availableErr
}

func newTestToolkit(fake *fakeExecutor) Toolkit {
	return New(fake, logger.NewWithWriter("error", os.Stderr))
}

func TestDuration(t *testing.T) {
	ctx := context.Background()

	t.Run("stream duration", func(t *testing.T) {
		fake := &fakeExecutor{
			run: func(call int, name string, args []string) (string, error) {
				return "12.345\n", nil
			},
		}
		tk := newTestToolkit(fake)

		d, err := tk.Duration(ctx, "a.mp3")
		if err != nil {
			t.Fatalf("Duration() error = %v", err)
		}
		want := time.Duration(12.345 * float64(time.Second))
		if d != want {
			t.Errorf("Duration() = %v, want %v", d, want)
		}
		if len(fake.calls) != 1 {
			t.Errorf("ffprobe calls = %d, want 1", len(fake.calls))
		}
	})

	t.Run("format fallback", func(t *testing.T) {
		fake := &fakeExecutor{
			run: func(call int, name string, args []string) (string, error) {
				if call == 0 {
					return "N/A\n", nil
				}
				return "5.0\n", nil
			},
		}
		tk := newTestToolkit(fake)

		d, err := tk.Duration(ctx, "a.mp3")
		if err != nil {
			t.Fatalf("Duration() error = %v", err)
		}
		if d != 5*time.Second {
			t.Errorf("Duration() = %v, want 5s", d)
		}
		if len(fake.calls) != 2 {
			t.Errorf("ffprobe calls = %d, want 2", len(fake.calls))
		}
	})

	t.Run("tool missing", func(t *testing.T) {
		fake := &fakeExecutor{availableErr: fmt.Errorf("%w: ffprobe", executor.ErrToolNotFound)}
		tk := newTestToolkit(fake)

		_, err := tk.Duration(ctx, "a.mp3")
		if !errors.Is(err, executor.ErrToolNotFound) {
			t.Errorf("Duration() error = %v, want ErrToolNotFound", err)
		}
	})
}

func TestScanDurations(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, name := range []string{"slide_01.mp3", "slide_02.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	fake := &fakeExecutor{
		run: func(call int, name string, args []string) (string, error) {
			return "1.5\n", nil
		},
	}
	tk := newTestToolkit(fake)

	results, total, err := tk.ScanDurations(ctx, dir, "*.mp3")
	if err != nil {
		t.Fatalf("ScanDurations() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "slide_01.mp3" {
		t.Errorf("results out of order: %v", results)
	}
	if total != 3*time.Second {
		t.Errorf("total = %v, want 3s", total)
	}
}

func TestScanDurationsEmptyDir(t *testing.T) {
	ctx := context.Background()
	tk := newTestToolkit(&fakeExecutor{})

	results, total, err := tk.ScanDurations(ctx, t.TempDir(), "")
	if err != nil {
		t.Fatalf("ScanDurations() error = %v", err)
	}
	if len(results) != 0 || total != 0 {
		t.Errorf("results = %v, total = %v, want empty", results, total)
	}
}

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want time.Duration
		ok   bool
	}{
		{"plain", "3.5", 3500 * time.Millisecond, true},
		{"trailing newline", "3.5\n", 3500 * time.Millisecond, true},
		{"multiple lines", "2.0\n99.0\n", 2 * time.Second, true},
		{"not a number", "N/A", 0, false},
		{"empty", "", 0, false},
		{"zero", "0.0", 0, false},
		{"negative", "-1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseProbeDuration(tt.out)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseProbeDuration(%q) = %v, %v, want %v, %v", tt.out, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00.000"},
		{"seconds", 7*time.Second + 250*time.Millisecond, "00:07.250"},
		{"minutes", 65*time.Second + 500*time.Millisecond, "01:05.500"},
		{"hours", time.Hour + time.Second, "01:00:01.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
