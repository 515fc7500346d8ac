// Package window provides the platform window capture/activation adapter.
//
// One variant per operating system is selected once at startup, so OS checks
// do not leak into call sites. Every operation is best-effort: capture
// failures yield an absent handle and activation failures are swallowed,
// because a focus convenience must never fail the invoking hook.
package window

import (
	"context"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// Adapter captures and activates terminal windows.
type Adapter interface {
	// Capture returns an opaque handle for the current foreground window.
	// ok is false when no handle could be determined.
	Capture(ctx context.Context) (handle string, ok bool)

	// Activate requests that the window identified by handle be brought to
	// the foreground. Best-effort; failures are swallowed.
	Activate(ctx context.Context, handle string)
}

// New selects the adapter variant for the given OS.
//
//nolint:ireturn // Factory intentionally returns the capability interface
func New(goos string, runner exec.CommandRunner, checker exec.ToolChecker, log logger.Logger) Adapter {
	switch goos {
	case "linux":
		return &linuxAdapter{runner: runner, checker: checker, logger: log}
	case "darwin":
		return &darwinAdapter{runner: runner, checker: checker, logger: log}
	case "windows":
		return &windowsAdapter{runner: runner, logger: log}
	default:
		log.Debug("no window adapter for platform", "goos", goos)

		return &noopAdapter{}
	}
}

// noopAdapter is used on platforms without window support.
type noopAdapter struct{}

func (*noopAdapter) Capture(context.Context) (string, bool) {
	return "", false
}

func (*noopAdapter) Activate(context.Context, string) {}
