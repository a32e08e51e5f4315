package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs a command and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// Available reports whether the named tool can be found on PATH.
	// The returned error wraps ErrToolNotFound so callers can distinguish
	// a missing tool from a failed invocation.
	Available(name string) error
}
