package config

import (
	"errors"
	"fmt"
)

// ErrInvalidSpeed indicates a non-positive playback speed factor. Speed is
// validated before any synthesis work starts.
var ErrInvalidSpeed = errors.New("speed must be greater than zero")

type Config struct {
	OpenAI      OpenAIConfig      `yaml:"openai"`
	TTS         TTSConfig         `yaml:"tts"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type OpenAIConfig struct {
	SpeechModel        string `yaml:"speech_model"`
	TranscriptionModel string `yaml:"transcription_model"`
}

type TTSConfig struct {
	Voice string  `yaml:"voice"`
	Speed float64 `yaml:"speed"`
}

type FFmpegConfig struct {
	AudioBitrate string `yaml:"audio_bitrate"`
	SampleRate   int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Scripts string `yaml:"scripts"`
	Output  string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a configuration with all defaults applied. Used when no
// config file is present, so the tool works out of the box like the
// original scripts did.
func Default() *Config {
	cfg := &Config{}
	// Validate cannot fail on the zero value because every field has a
	// default and the zero speed means "use the default".
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.TTS.Speed < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSpeed, c.TTS.Speed)
	}

	if c.OpenAI.SpeechModel == "" {
		c.OpenAI.SpeechModel = "tts-1"
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "onyx"
	}
	if c.TTS.Speed == 0 {
		c.TTS.Speed = 1.0
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "192k"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 44100
	}
	if c.Paths.Scripts == "" {
		c.Paths.Scripts = "scripts"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
