package watcher

import "context"

// Watcher monitors a directory for newly dropped script files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ScriptHandler processes one newly detected script file
type ScriptHandler func(ctx context.Context, scriptPath string) error
