package window

import (
	"context"
	"strconv"
	"strings"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// powershellBin runs the dynamically constructed native calls.
const powershellBin = "powershell"

// captureCommand P/Invokes GetForegroundWindow and prints the handle as a
// 64-bit decimal string.
const captureCommand = `Add-Type -Namespace Win -Name User32 -MemberDefinition '[DllImport("user32.dll")] public static extern System.IntPtr GetForegroundWindow();'; [Win.User32]::GetForegroundWindow().ToInt64()`

// activateCommandPrefix P/Invokes SetForegroundWindow for a given handle.
const activateCommandPrefix = `Add-Type -Namespace Win -Name User32 -MemberDefinition '[DllImport("user32.dll")] public static extern bool SetForegroundWindow(System.IntPtr hWnd);'; [Win.User32]::SetForegroundWindow([System.IntPtr]::new(`

// windowsAdapter identifies and activates windows through the Win32
// foreground-window functions, invoked via PowerShell.
type windowsAdapter struct {
	runner exec.CommandRunner
	logger logger.Logger
}

// Capture queries the foreground window handle.
func (a *windowsAdapter) Capture(ctx context.Context) (string, bool) {
	result := a.runner.Run(ctx, powershellBin,
		"-NoProfile", "-NonInteractive", "-Command", captureCommand)
	if result.Failed() {
		a.logger.Debug("window capture failed",
			"stderr", strings.TrimSpace(result.Stderr),
			"error", result.Err,
		)

		return "", false
	}

	handle := strings.TrimSpace(result.Stdout)
	if _, err := strconv.ParseInt(handle, 10, 64); err != nil {
		a.logger.Debug("unexpected window handle", "handle", handle)

		return "", false
	}

	return handle, true
}

// Activate calls SetForegroundWindow with the handle, fire-and-forget.
//
// The handle is validated as a decimal int64 before being interpolated into
// the PowerShell command.
func (a *windowsAdapter) Activate(_ context.Context, handle string) {
	value, err := strconv.ParseInt(handle, 10, 64)
	if err != nil {
		a.logger.Debug("invalid window handle", "handle", handle)

		return
	}

	command := activateCommandPrefix + strconv.FormatInt(value, 10) + `))`

	if err := a.runner.StartDetached(powershellBin,
		"-NoProfile", "-NonInteractive", "-Command", command); err != nil {
		a.logger.Debug("window activation failed", "error", err)
	}
}
