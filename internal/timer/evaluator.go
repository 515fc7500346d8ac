// Package timer decides whether a finished task warrants a completion
// notification.
package timer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"

	"github.com/XeonosXYZ/claude-code-notifier/internal/i18n"
	"github.com/XeonosXYZ/claude-code-notifier/internal/store"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// millisPerSecond converts the stored epoch-millisecond timestamps.
const millisPerSecond = 1000

// Decision is the outcome of evaluating a stopped session.
type Decision struct {
	// Notify is true when the task ran at least the threshold duration.
	Notify bool

	// DurationSeconds is the task duration, floored to whole seconds.
	DurationSeconds int64

	// Message is the formatted, localized notification body.
	Message string

	// WindowHandle is the handle captured at session start, if any.
	WindowHandle string
}

// Evaluator reads a session's start record and applies the duration threshold.
type Evaluator struct {
	store     *store.Store
	bundle    *i18n.Bundle
	threshold int64
	logger    logger.Logger
	now       func() time.Time
}

// Option configures the Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Evaluator) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithTimeFunc sets a custom time function for testing.
func WithTimeFunc(fn func() time.Time) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.now = fn
		}
	}
}

// NewEvaluator creates an Evaluator with the given threshold in seconds.
func NewEvaluator(st *store.Store, bundle *i18n.Bundle, thresholdSeconds int64, opts ...Option) *Evaluator {
	e := &Evaluator{
		store:     st,
		bundle:    bundle,
		threshold: thresholdSeconds,
		logger:    logger.NewNoOpLogger(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate reads the session's start record and decides whether to notify.
//
// A session without a start record is not an error: the decision is nil and
// nothing is touched. Once a start record was found, all session fields are
// deleted regardless of the notify outcome.
func (e *Evaluator) Evaluate(sessionID string) (*Decision, error) {
	startRaw, err := e.store.Get(sessionID, store.FieldStart)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.logger.Debug("no start record for session", "session_id", sessionID)

			return nil, nil
		}

		return nil, errors.Wrap(err, "reading start record")
	}

	// Remaining fields are read before the unconditional cleanup below.
	prompt, _ := e.store.Get(sessionID, store.FieldPrompt)
	handle, _ := e.store.Get(sessionID, store.FieldWindow)

	defer func() {
		if cleanupErr := e.store.DeleteAll(sessionID); cleanupErr != nil {
			e.logger.Debug("session cleanup failed",
				"session_id", sessionID,
				"error", cleanupErr,
			)
		}
	}()

	decision := &Decision{WindowHandle: handle}

	startMillis, err := strconv.ParseInt(startRaw, 10, 64)
	if err != nil {
		// A corrupt start record is treated like a too-short task: clean
		// up, do not notify.
		e.logger.Debug("unparseable start record",
			"session_id", sessionID,
			"value", startRaw,
		)

		return decision, nil
	}

	elapsed := e.now().UnixMilli() - startMillis
	decision.DurationSeconds = elapsed / millisPerSecond

	e.logger.Info("session finished",
		"session_id", sessionID,
		"elapsed", durafmt.Parse(time.Duration(elapsed)*time.Millisecond).LimitFirstN(2).String(),
	)

	if decision.DurationSeconds < e.threshold {
		return decision, nil
	}

	decision.Notify = true
	decision.Message = e.formatMessage(decision.DurationSeconds, prompt)

	return decision, nil
}

// formatMessage builds the localized completion message, appending the prompt
// excerpt on a second line when present.
func (e *Evaluator) formatMessage(durationSeconds int64, prompt string) string {
	message := fmt.Sprintf("%s (%d %s)",
		e.bundle.T(i18n.KeyCompleted),
		durationSeconds,
		e.bundle.T(i18n.KeySeconds),
	)

	if prompt != "" {
		message += "\n" + prompt + "..."
	}

	return message
}
