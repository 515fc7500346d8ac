// Package notify formats and delivers desktop notifications, wiring click
// events to window activation where the platform allows it.
package notify

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gen2brain/beeep"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/internal/window"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/config"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// External notification tools preferred over the portable backend when they
// enable click-to-focus.
const (
	terminalNotifierBin = "terminal-notifier"
	notifySendBin       = "notify-send"
)

// focusAction is the notify-send action id used for click-to-focus.
const focusAction = "default"

// Notification is one desktop notification request.
type Notification struct {
	// Title is the notification title line.
	Title string

	// Message is the notification body.
	Message string

	// WindowHandle, when present, enables click-to-focus of that window.
	WindowHandle string

	// Timeout is the display timeout. Zero means the configured default.
	Timeout time.Duration
}

// Sender delivers desktop notifications.
type Sender interface {
	// Send delivers a notification. Failures degrade silently at the call
	// site; the returned error is for debug logging only.
	Send(ctx context.Context, n Notification) error
}

// Notifier is the default Sender backed by the platform notification
// mechanisms, falling back to the portable beeep backend.
type Notifier struct {
	cfg     *config.NotifyConfig
	goos    string
	runner  exec.CommandRunner
	checker exec.ToolChecker
	windows window.Adapter
	logger  logger.Logger
}

// NewNotifier creates a Notifier for the given OS.
func NewNotifier(
	cfg *config.NotifyConfig,
	goos string,
	runner exec.CommandRunner,
	checker exec.ToolChecker,
	windows window.Adapter,
	log logger.Logger,
) *Notifier {
	return &Notifier{
		cfg:     cfg,
		goos:    goos,
		runner:  runner,
		checker: checker,
		windows: windows,
		logger:  log,
	}
}

// Send delivers the notification.
//
// When a window handle is present and the platform offers a click mechanism,
// clicking the notification refocuses the originating window. Everything is
// best-effort: a missing tool or failed delivery only produces a debug log.
func (n *Notifier) Send(ctx context.Context, notification Notification) error {
	timeout := notification.Timeout
	if timeout <= 0 {
		timeout = time.Duration(n.cfg.GetTimeoutSeconds()) * time.Second
	}

	switch {
	case n.goos == "darwin" && notification.WindowHandle != "" &&
		n.checker.IsAvailable(terminalNotifierBin):
		return n.sendTerminalNotifier(notification, timeout)

	case n.goos == "linux" && notification.WindowHandle != "" &&
		n.checker.IsAvailable(notifySendBin):
		return n.sendNotifySend(ctx, notification, timeout)

	default:
		return n.sendBeeep(notification)
	}
}

// sendTerminalNotifier uses terminal-notifier's -activate to hand the click
// action to macOS itself, so it fires even after this process exits.
func (n *Notifier) sendTerminalNotifier(notification Notification, timeout time.Duration) error {
	args := []string{
		"-title", notification.Title,
		"-message", notification.Message,
		"-activate", notification.WindowHandle,
		"-timeout", strconv.Itoa(int(timeout.Seconds())),
	}

	if n.cfg.IsSoundEnabled() {
		args = append(args, "-sound", "default")
	}

	if icon := n.icon(); icon != "" {
		args = append(args, "-appIcon", icon)
	}

	result := n.runner.RunWithTimeout(timeout, terminalNotifierBin, args...)
	if result.Failed() {
		return errors.Wrap(result.Err, "terminal-notifier")
	}

	return nil
}

// sendNotifySend posts the notification with a focus action and blocks until
// the user reacts or the display timeout expires. The activation itself is
// dispatched detached, so it does not depend on this process.
func (n *Notifier) sendNotifySend(ctx context.Context, notification Notification, timeout time.Duration) error {
	args := []string{
		"--app-name=" + n.cfg.GetTitle(),
		"--expire-time=" + strconv.Itoa(int(timeout.Milliseconds())),
		"--action=" + focusAction + "=Focus",
		"--wait",
	}

	if icon := n.icon(); icon != "" {
		args = append(args, "--icon="+icon)
	}

	args = append(args, notification.Title, notification.Message)

	// --wait holds the process until the notification is dismissed, clicked,
	// or expired; bound it a little past the display timeout.
	ctx, cancel := context.WithTimeout(ctx, timeout+time.Second)
	defer cancel()

	result := n.runner.Run(ctx, notifySendBin, args...)
	if result.Err != nil && result.Stdout == "" {
		return errors.Wrap(result.Err, "notify-send")
	}

	if strings.TrimSpace(result.Stdout) == focusAction {
		n.windows.Activate(ctx, notification.WindowHandle)
	}

	return nil
}

// sendBeeep uses the portable backend; no click action is available.
func (n *Notifier) sendBeeep(notification Notification) error {
	var err error
	if n.cfg.IsSoundEnabled() {
		err = beeep.Alert(notification.Title, notification.Message, n.icon())
	} else {
		err = beeep.Notify(notification.Title, notification.Message, n.icon())
	}

	return errors.Wrap(err, "beeep")
}

// icon returns the configured icon path only when the file exists.
func (n *Notifier) icon() string {
	path := n.cfg.GetIcon()
	if path == "" {
		return ""
	}

	if _, err := os.Stat(path); err != nil {
		n.logger.Debug("notification icon missing", "path", path)

		return ""
	}

	return path
}
