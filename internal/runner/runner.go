// Package runner executes a case's command line through the shell and
// captures its output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "/bin/sh"

// Runner executes command lines one at a time, blocking until the child
// process exits. There is no parallelism and, unless Timeout is set, no
// cancellation: a hung child hangs the run.
type Runner struct {
	Shell   string        // Shell binary, defaults to DefaultShell
	Timeout time.Duration // Per-command limit, zero means none
	Trace   func(string)  // Called with the command line before it runs
}

// New creates a runner with default settings.
func New() *Runner {
	return &Runner{}
}

// ExitError reports a child process that exited non-zero. It carries the
// captured stderr so the caller can surface it; the run must not continue
// past it.
type ExitError struct {
	CommandLine string
	Code        int
	Stderr      string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("process exited abnormally with code %d", e.Code)
}

// Run executes commandLine via `shell -c` and returns the captured stdout
// unmodified. A non-zero exit yields an *ExitError.
func (r *Runner) Run(commandLine string) (string, error) {
	if r.Trace != nil {
		r.Trace(commandLine)
	}

	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", commandLine)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("command timed out after %s: %s", r.Timeout, commandLine)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				CommandLine: commandLine,
				Code:        exitErr.ExitCode(),
				Stderr:      stderr.String(),
			}
		}
		return "", fmt.Errorf("cannot run `%s`: %w", commandLine, err)
	}

	return stdout.String(), nil
}
