package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("audio-"+name), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMergeSingleFileCopies(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, "slide_01.mp3")

	fake := &fakeExecutor{}
	tk := newTestToolkit(fake)

	out, err := tk.Merge(ctx, MergeOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if out != filepath.Join(dir, "merged_slides.mp3") {
		t.Errorf("output path = %q", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "audio-slide_01.mp3" {
		t.Errorf("output content = %q", data)
	}
	if len(fake.calls) != 0 {
		t.Errorf("ffmpeg invoked %d times for single-file merge", len(fake.calls))
	}
}

func TestMergeStreamCopy(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, "slide_01.mp3", "slide_02.mp3")

	fake := &fakeExecutor{
		run: func(call int, name string, args []string) (string, error) {
			// ffmpeg writes its output file (the last argument)
			return "", os.WriteFile(args[len(args)-1], []byte("merged"), 0644)
		},
	}
	tk := newTestToolkit(fake)

	out, err := tk.Merge(ctx, MergeOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("ffmpeg calls = %d, want 1", len(fake.calls))
	}
	if !slices.Contains(fake.calls[0], "copy") {
		t.Errorf("first attempt should be a stream copy: %v", fake.calls[0])
	}

	data, _ := os.ReadFile(out)
	if string(data) != "merged" {
		t.Errorf("output content = %q", data)
	}
}

func TestMergeReencodeFallback(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, "slide_01.mp3", "slide_02.mp3")

	fake := &fakeExecutor{
		run: func(call int, name string, args []string) (string, error) {
			if call == 0 {
				return "", errors.New("mismatched stream parameters")
			}
			return "", os.WriteFile(args[len(args)-1], []byte("reencoded"), 0644)
		},
	}
	tk := newTestToolkit(fake)

	out, err := tk.Merge(ctx, MergeOptions{Dir: dir, Bitrate: "128k"})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if len(fake.calls) != 2 {
		t.Fatalf("ffmpeg calls = %d, want 2", len(fake.calls))
	}
	second := fake.calls[1]
	if !slices.Contains(second, "libmp3lame") || !slices.Contains(second, "128k") {
		t.Errorf("re-encode args = %v", second)
	}

	data, _ := os.ReadFile(out)
	if string(data) != "reencoded" {
		t.Errorf("output content = %q", data)
	}
}

func TestMergeSelectionOrdersBySlideNumber(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// Lexicographic order would put slide_10 before slide_2
	writeFiles(t, dir, "slide_2.mp3", "slide_10.mp3", "extra.mp3")

	var listContent string
	fake := &fakeExecutor{
		run: func(call int, name string, args []string) (string, error) {
			for i, a := range args {
				if a == "-i" {
					data, err := os.ReadFile(args[i+1])
					if err != nil {
						return "", err
					}
					listContent = string(data)
				}
			}
			return "", os.WriteFile(args[len(args)-1], []byte("merged"), 0644)
		},
	}
	tk := newTestToolkit(fake)

	if _, err := tk.Merge(ctx, MergeOptions{Dir: dir, Selection: "2,10"}); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(listContent), "\n")
	if len(lines) != 2 {
		t.Fatalf("concat list has %d lines: %q", len(lines), listContent)
	}
	if !strings.Contains(lines[0], "slide_2.mp3") || !strings.Contains(lines[1], "slide_10.mp3") {
		t.Errorf("concat list out of slide order: %q", listContent)
	}
}

func TestMergeExcludesOutputFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, "slide_01.mp3", "slide_02.mp3", "merged_slides.mp3")

	fake := &fakeExecutor{
		run: func(call int, name string, args []string) (string, error) {
			for i, a := range args {
				if a == "-i" {
					data, _ := os.ReadFile(args[i+1])
					if strings.Contains(string(data), "merged_slides.mp3") {
						t.Errorf("output file fed back into merge: %q", data)
					}
				}
			}
			return "", os.WriteFile(args[len(args)-1], []byte("merged"), 0644)
		},
	}
	tk := newTestToolkit(fake)

	if _, err := tk.Merge(ctx, MergeOptions{Dir: dir, Overwrite: true}); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
}

func TestMergeRefusesExistingOutput(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, "slide_01.mp3", "slide_02.mp3", "merged_slides.mp3")

	tk := newTestToolkit(&fakeExecutor{})

	_, err := tk.Merge(ctx, MergeOptions{Dir: dir})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Merge() error = %v, want existing-output refusal", err)
	}
}

func TestMergeNoInputs(t *testing.T) {
	ctx := context.Background()
	tk := newTestToolkit(&fakeExecutor{})

	if _, err := tk.Merge(ctx, MergeOptions{Dir: t.TempDir()}); err == nil {
		t.Error("Merge() should fail with no inputs")
	}
}

func TestSlideNumber(t *testing.T) {
	tests := []struct {
		name string
		path string
		num  int
		ok   bool
	}{
		{"padded", "slide_01.mp3", 1, true},
		{"unpadded", "slide_7.mp3", 7, true},
		{"nested path", "out/slide_12.mp3", 12, true},
		{"uppercase", "SLIDE_3.MP3", 3, true},
		{"not a slide", "intro.mp3", 0, false},
		{"wrong extension", "slide_1.wav", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := slideNumber(tt.path)
			if num != tt.num || ok != tt.ok {
				t.Errorf("slideNumber(%q) = %d, %v, want %d, %v", tt.path, num, ok, tt.num, tt.ok)
			}
		})
	}
}

func TestConcatListContent(t *testing.T) {
	got := concatListContent([]string{"/a/one.mp3", "/a/two.mp3"})
	want := "file '/a/one.mp3'\nfile '/a/two.mp3'\n"
	if got != want {
		t.Errorf("concatListContent() = %q, want %q", got, want)
	}
}
