package audio

import (
	"github.com/seojun-park/slidevoice/internal/logger"
	"github.com/seojun-park/slidevoice/pkg/executor"
)

type implToolkit struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Toolkit instance
func New(exec executor.Executor, log logger.Logger) Toolkit {
	return &implToolkit{
		executor: exec,
		logger:   log,
	}
}
