package executor

import (
	"context"
	"time"
)

// Executor defines the interface for invoking external tools.
type Executor interface {
	// Execute runs a command and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteTimeout runs a command with an execution deadline on top of ctx.
	ExecuteTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)

	// LookPath resolves an external tool to an executable path. All
	// platform-specific lookup lives behind this method.
	LookPath(name string) (string, error)
}
