package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/seojun-park/slidevoice/internal/config"
	"github.com/seojun-park/slidevoice/internal/transcriber"
)

func main() {
	ctx := context.Background()

	var (
		cfgPath     string
		language    string
		prompt      string
		format      string
		temperature float64
		outputPath  string
		save        bool
		apiKey      string
	)

	flag.StringVar(&cfgPath, "config", "config.yaml", "path to config file (defaults used if absent)")
	flag.StringVar(&language, "language", "", `language code hint, e.g. "ko", "en"`)
	flag.StringVar(&prompt, "prompt", "", "optional domain-specific hint text")
	flag.StringVar(&format, "response-format", "text", fmt.Sprintf("output format, one of %s", strings.Join(transcriber.Formats(), ", ")))
	flag.Float64Var(&temperature, "temperature", 0.0, "decoding temperature")
	flag.StringVar(&outputPath, "output", "", "output file path (prints to stdout if omitted)")
	flag.BoolVar(&save, "save", false, "write to a path inferred from the audio filename instead of stdout")
	flag.StringVar(&apiKey, "api-key", "", "OpenAI API key (alternatively set OPENAI_API_KEY)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: transcribe [flags] <audio file>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	audioPath := flag.Arg(0)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	key, err := resolveAPIKey(apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tr, err := transcriber.NewOpenAI(key, cfg.OpenAI.TranscriptionModel, transcriber.Options{
		Language:    language,
		Prompt:      prompt,
		Format:      format,
		Temperature: temperature,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text, err := tr.Transcribe(ctx, audioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during transcription: %v\n", err)
		os.Exit(2)
	}

	if outputPath == "" && save {
		outputPath = transcriber.OutputPath(audioPath, format)
	}

	if outputPath == "" {
		fmt.Println(text)
		return
	}

	if err := transcriber.WriteOutput(outputPath, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("Saved transcription to %s\n", outputPath)
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "config.yaml" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func resolveAPIKey(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}

	_ = godotenv.Load()

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("OpenAI API key not provided: use -api-key or set OPENAI_API_KEY")
}
