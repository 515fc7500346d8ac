package window

import (
	"context"
	"strings"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// osascriptBin is the macOS scripting bridge.
const osascriptBin = "osascript"

// captureScript resolves the frontmost process's bundle identifier.
const captureScript = `tell application "System Events" to get bundle identifier of first process whose frontmost is true`

// darwinAdapter identifies and activates applications by bundle identifier
// via the osascript scripting bridge.
type darwinAdapter struct {
	runner  exec.CommandRunner
	checker exec.ToolChecker
	logger  logger.Logger
}

// Capture queries the frontmost application's bundle identifier.
func (a *darwinAdapter) Capture(ctx context.Context) (string, bool) {
	if !a.checker.IsAvailable(osascriptBin) {
		a.logger.Debug("osascript not available, skipping window capture")

		return "", false
	}

	result := a.runner.Run(ctx, osascriptBin, "-e", captureScript)
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

// Activate tells the application with the given bundle identifier to come to
// the foreground, fire-and-forget.
func (a *darwinAdapter) Activate(_ context.Context, handle string) {
	if handle == "" || !a.checker.IsAvailable(osascriptBin) {
		return
	}

	script := `tell application id "` + strings.ReplaceAll(handle, `"`, ``) + `" to activate`

	if err := a.runner.StartDetached(osascriptBin, "-e", script); err != nil {
		a.logger.Debug("window activation failed", "error", err)
	}
}
