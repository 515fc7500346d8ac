// Package hooks implements the three lifecycle entry points invoked by the
// host coding assistant.
//
// Each entry point is one short-lived process invocation transitioning a
// session through: absent -> started -> (notified | skipped) -> absent.
// Nothing here may fail the host: every degraded path ends in a debug log
// and a nil return.
package hooks

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/XeonosXYZ/claude-code-notifier/internal/i18n"
	"github.com/XeonosXYZ/claude-code-notifier/internal/notify"
	"github.com/XeonosXYZ/claude-code-notifier/internal/store"
	"github.com/XeonosXYZ/claude-code-notifier/internal/timer"
	"github.com/XeonosXYZ/claude-code-notifier/internal/window"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/config"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/hook"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// Handler wires the session store, window adapter, duration evaluator, and
// notifier into the three entry points.
type Handler struct {
	store     *store.Store
	windows   window.Adapter
	evaluator *timer.Evaluator
	notifier  notify.Sender
	bundle    *i18n.Bundle
	cfg       *config.NotifyConfig
	logger    logger.Logger
	now       func() time.Time
}

// Option configures the Handler.
type Option func(*Handler)

// WithTimeFunc sets a custom time function for testing.
func WithTimeFunc(fn func() time.Time) Option {
	return func(h *Handler) {
		if fn != nil {
			h.now = fn
		}
	}
}

// NewHandler creates a Handler.
func NewHandler(
	st *store.Store,
	windows window.Adapter,
	evaluator *timer.Evaluator,
	notifier notify.Sender,
	bundle *i18n.Bundle,
	cfg *config.NotifyConfig,
	log logger.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		store:     st,
		windows:   windows,
		evaluator: evaluator,
		notifier:  notifier,
		bundle:    bundle,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// PromptSubmit records the task start: timestamp, prompt excerpt, and the
// currently focused window.
func (h *Handler) PromptSubmit(ctx context.Context, payload *hook.PromptSubmitPayload) error {
	sessionID := payload.Session()

	startMillis := strconv.FormatInt(h.now().UnixMilli(), 10)
	if err := h.store.Put(sessionID, store.FieldStart, startMillis); err != nil {
		return errors.Wrap(err, "recording start time")
	}

	if payload.Prompt != "" {
		if err := h.store.Put(sessionID, store.FieldPrompt, hook.Excerpt(payload.Prompt)); err != nil {
			h.logger.Debug("failed to store prompt excerpt",
				"session_id", sessionID,
				"error", err,
			)
		}
	}

	if handle, ok := h.windows.Capture(ctx); ok {
		if err := h.store.Put(sessionID, store.FieldWindow, handle); err != nil {
			h.logger.Debug("failed to store window handle",
				"session_id", sessionID,
				"error", err,
			)
		}
	}

	h.logger.Info("timer started", "session_id", sessionID)

	return nil
}

// Stop evaluates the finished task and emits a completion notification when
// it ran past the threshold. Session fields are gone afterwards either way.
func (h *Handler) Stop(ctx context.Context, payload *hook.StopPayload) error {
	sessionID := payload.Session()

	decision, err := h.evaluator.Evaluate(sessionID)
	if err != nil {
		return errors.Wrap(err, "evaluating duration")
	}

	if decision == nil || !decision.Notify {
		return nil
	}

	notification := notify.Notification{
		Title:        h.cfg.GetTitle(),
		Message:      decision.Message,
		WindowHandle: decision.WindowHandle,
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Debug("completion notification failed",
			"session_id", sessionID,
			"error", err,
		)
	}

	return nil
}

// PermissionRequest always notifies, with a longer display timeout so the
// prompt is not missed. The window handle is read but not deleted; the
// session is still running.
func (h *Handler) PermissionRequest(ctx context.Context, payload *hook.PermissionPayload) error {
	sessionID := payload.Session()

	message := payload.ToolName
	if detail := payload.Detail(); detail != "" {
		message += "\n" + hook.Excerpt(detail)
	}

	handle, err := h.store.Get(sessionID, store.FieldWindow)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.logger.Debug("failed to read window handle",
			"session_id", sessionID,
			"error", err,
		)
	}

	notification := notify.Notification{
		Title:        h.bundle.T(i18n.KeyPermissionRequest),
		Message:      message,
		WindowHandle: handle,
		Timeout:      time.Duration(h.cfg.GetPermissionTimeoutSeconds()) * time.Second,
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Debug("permission notification failed",
			"session_id", sessionID,
			"error", err,
		)
	}

	return nil
}
