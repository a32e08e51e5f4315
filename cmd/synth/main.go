package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/seojun-park/slidevoice/internal/config"
	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/internal/processor"
	"github.com/seojun-park/slidevoice/internal/synthesizer"
	"github.com/seojun-park/slidevoice/internal/watcher"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

func main() {
	ctx := context.Background()

	var (
		cfgPath   string
		outputDir string
		voice     string
		speed     float64
		slidesOpt string
		apiKey    string
		watch     bool
	)

	flag.StringVar(&cfgPath, "config", "config.yaml", "path to config file (defaults used if absent)")
	flag.StringVar(&outputDir, "output-dir", "", "directory to save the audio files (default from config)")
	flag.StringVar(&voice, "voice", "", fmt.Sprintf("voice to use, one of %s (default from config)", strings.Join(synthesizer.Voices(), ", ")))
	flag.Float64Var(&speed, "speed", 0, "playback speed factor, e.g. 1.25 (default from config)")
	flag.StringVar(&slidesOpt, "slides", "", `slides to process, e.g. "1", "2,4", "3-5", "1,3-4,7" (default all)`)
	flag.StringVar(&apiKey, "api-key", "", "OpenAI API key (alternatively set OPENAI_API_KEY)")
	flag.BoolVar(&watch, "watch", false, "watch the scripts directory and synthesize new scripts as they appear")
	flag.Parse()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if voice != "" {
		cfg.TTS.Voice = voice
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "speed" {
			cfg.TTS.Speed = speed
		}
	})
	if outputDir == "" {
		outputDir = cfg.Paths.Output
	}

	if cfg.TTS.Speed <= 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fmt.Errorf("%w: %g", config.ErrInvalidSpeed, cfg.TTS.Speed))
		os.Exit(1)
	}

	key, err := resolveAPIKey(apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	synth, err := synthesizer.NewOpenAI(key, cfg.OpenAI.SpeechModel, cfg.TTS.Voice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	proc := processor.New(cfg, synth, executor.New(), log)

	if watch {
		runWatch(ctx, cfg, proc, log, outputDir)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: synth [flags] <script.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	results, err := proc.ProcessFile(ctx, flag.Arg(0), outputDir, slidesOpt)
	if err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		os.Exit(1)
	}

	for _, r := range results {
		if r.Succeeded() {
			log.Info(ctx, "slide %d: %s", r.Index, r.Path)
		} else {
			log.Error(ctx, "slide %d: %v", r.Index, r.Err)
		}
	}
	if results.FailedCount() > 0 {
		os.Exit(1)
	}
}

// scriptOutputDir returns the per-script subdirectory of the output dir,
// named after the script file without its extension.
func scriptOutputDir(outputDir, scriptPath string) string {
	stem := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
	return filepath.Join(outputDir, stem)
}

// runWatch monitors the scripts directory, synthesizing each new script
// into its own subdirectory of the output dir.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, outputDir string) {
	if err := os.MkdirAll(cfg.Paths.Scripts, 0755); err != nil {
		log.Error(ctx, "Failed to create scripts directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, scriptPath string) error {
		_, err := proc.ProcessFile(ctx, scriptPath, scriptOutputDir(outputDir, scriptPath), "")
		return err
	}

	w, err := watcher.New(cfg.Paths.Scripts, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s, output in %s. Press Ctrl+C to stop", cfg.Paths.Scripts, outputDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
}

// loadConfig reads the config file. An absent file at the default path
// falls back to defaults so the tool works without any setup; an absent
// file the user asked for explicitly is still an error.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "config.yaml" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// resolveAPIKey prefers the flag, then the environment, with .env files
// loaded into the environment first.
func resolveAPIKey(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}

	// A missing .env file is fine; the variable may be set directly.
	_ = godotenv.Load()

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("OpenAI API key not provided: use -api-key or set OPENAI_API_KEY")
}
