package window

import (
	"context"
	"strings"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// xdotoolBin is the X11 window utility used for capture and activation.
const xdotoolBin = "xdotool"

// linuxAdapter identifies and activates X11 windows via xdotool.
type linuxAdapter struct {
	runner  exec.CommandRunner
	checker exec.ToolChecker
	logger  logger.Logger
}

// Capture queries the active window ID.
func (a *linuxAdapter) Capture(ctx context.Context) (string, bool) {
	if !a.checker.IsAvailable(xdotoolBin) {
		a.logger.Debug("xdotool not available, skipping window capture")

		return "", false
	}

	result := a.runner.Run(ctx, xdotoolBin, "getactivewindow")
	if result.Failed() {
		a.logger.Debug("window capture failed",
			"stderr", strings.TrimSpace(result.Stderr),
			"error", result.Err,
		)

		return "", false
	}

	handle := strings.TrimSpace(result.Stdout)
	if handle == "" {
		return "", false
	}

	return handle, true
}

// Activate requests activation of a window ID, fire-and-forget.
func (a *linuxAdapter) Activate(_ context.Context, handle string) {
	if handle == "" || !a.checker.IsAvailable(xdotoolBin) {
		return
	}

	if err := a.runner.StartDetached(xdotoolBin, "windowactivate", handle); err != nil {
		a.logger.Debug("window activation failed", "error", err)
	}
}
