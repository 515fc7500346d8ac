// Package exec provides abstractions for executing external commands.
package exec

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultTimeout bounds external tool calls so a slow or hung utility never
// blocks the invoking hook.
const DefaultTimeout = 3 * time.Second

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success returns true if the command completed with exit code zero.
func (r *CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failed returns true if the command failed to run or exited non-zero.
func (r *CommandResult) Failed() bool {
	return !r.Success()
}

// CommandRunner executes external commands with timeout and output capture.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) *CommandResult

	// RunWithTimeout executes a command with a specific timeout.
	RunWithTimeout(timeout time.Duration, name string, args ...string) *CommandResult

	// StartDetached starts a command without waiting for it, discarding its
	// output. Used for fire-and-forget actions whose outcome we do not
	// depend on, such as window activation.
	StartDetached(name string, args ...string) error
}

// commandRunner implements CommandRunner.
type commandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new CommandRunner with the given default timeout.
func NewCommandRunner(defaultTimeout time.Duration) CommandRunner {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultTimeout
	}

	return &commandRunner{
		defaultTimeout: defaultTimeout,
	}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) *CommandResult {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
	} else if err != nil {
		result.Err = errors.Wrapf(err, "executing %s", name)
	}

	return result
}

// RunWithTimeout executes a command with a specific timeout.
func (r *commandRunner) RunWithTimeout(timeout time.Duration, name string, args ...string) *CommandResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return r.Run(ctx, name, args...)
}

// StartDetached starts a command without collecting output or waiting.
//
// The started process is released immediately so it outlives the invoking
// hook process.
func (r *commandRunner) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", name)
	}

	return errors.Wrapf(cmd.Process.Release(), "releasing %s", name)
}
