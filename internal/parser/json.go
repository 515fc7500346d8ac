// Package parser provides tolerant JSON input parsing for hook payloads.
//
// The invoking host pipes one JSON object per event on standard input.
// Malformed or empty input is never fatal: payloads decode to their zero
// value and the hook proceeds with defaults.
package parser

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/XeonosXYZ/claude-code-notifier/pkg/hook"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// JSONParser reads one hook payload from a reader.
type JSONParser struct {
	reader io.Reader
	logger logger.Logger
}

// NewJSONParser creates a JSONParser that reads from the given reader.
func NewJSONParser(reader io.Reader, log logger.Logger) *JSONParser {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &JSONParser{
		reader: reader,
		logger: log,
	}
}

// PromptSubmit parses a prompt-submit payload.
func (p *JSONParser) PromptSubmit() *hook.PromptSubmitPayload {
	payload := &hook.PromptSubmitPayload{}
	p.decode(payload)

	return payload
}

// Stop parses a task-stop payload.
func (p *JSONParser) Stop() *hook.StopPayload {
	payload := &hook.StopPayload{}
	p.decode(payload)

	return payload
}

// Permission parses a permission-request payload.
func (p *JSONParser) Permission() *hook.PermissionPayload {
	payload := &hook.PermissionPayload{}
	p.decode(payload)

	return payload
}

// decode fills v from the reader, leaving it zero on any failure.
func (p *JSONParser) decode(v any) {
	data, err := io.ReadAll(p.reader)
	if err != nil {
		p.logger.Debug("failed to read input", "error", err)

		return
	}

	if len(data) == 0 {
		p.logger.Debug("empty input, using defaults")

		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		p.logger.Debug("malformed input, using defaults",
			"error", errors.Wrap(err, "invalid JSON"),
		)
	}
}
