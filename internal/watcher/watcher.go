package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/seojun-park/slidevoice/internal/logger"
)

// settleDelay gives the writer a moment to finish before the script is read.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	scriptsDir    string
	handler       ScriptHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the scripts directory for new presentation
// scripts, synthesizing each as it appears.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Script watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.scriptsDir)
	w.logger.Info(ctx, "Supported extensions: .txt, .md")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight scripts to finish...")
			w.wg.Wait()
			w.logger.Info(ctx, "Script watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isScriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-script file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New script detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(scriptPath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, scriptPath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", scriptPath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isScriptFile checks for a supported script extension
func isScriptFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}
