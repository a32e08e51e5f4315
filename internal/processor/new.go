package processor

import (
	"github.com/seojun-park/slidevoice/internal/config"
	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/internal/synthesizer"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	synth    synthesizer.Synthesizer
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, synth synthesizer.Synthesizer, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		synth:    synth,
		executor: exec,
		logger:   log,
	}
}
