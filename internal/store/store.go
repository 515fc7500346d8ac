// Package store provides the filesystem-backed per-session state store.
//
// Each session field is an independent file, so partial writes and reads are
// possible without corrupting other fields. The store substitutes for
// in-process state across the process-per-invocation boundary: the hook that
// records a task start and the hook that evaluates its duration are separate
// processes.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// Namespace is the subdirectory of the system temp directory holding state.
const Namespace = "claude-code-notifier"

// File permission constants.
const (
	// fieldFilePermissions is the permission mode for field files.
	fieldFilePermissions = 0o600

	// stateDirPermissions is the permission mode for the state directory.
	stateDirPermissions = 0o700
)

// ErrNotFound is returned by Get when a field is absent for the session.
var ErrNotFound = errors.New("session field not found")

// Field identifies one independently stored attribute of a session record.
type Field string

const (
	// FieldStart holds the task start time as epoch milliseconds.
	FieldStart Field = "start"

	// FieldPrompt holds the prompt excerpt.
	FieldPrompt Field = "prompt"

	// FieldWindow holds the platform-specific window handle.
	FieldWindow Field = "window"
)

// Fields lists every session field, in cleanup order.
var Fields = []Field{FieldStart, FieldPrompt, FieldWindow}

// Store reads and writes per-session field files.
//
// No locking: a session has a single writer and a single reader.
type Store struct {
	dir    string
	logger logger.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithDir sets a custom state directory.
func WithDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// New creates a Store rooted at the default temp-directory namespace.
func New(opts ...Option) *Store {
	s := &Store{
		dir:    filepath.Join(os.TempDir(), Namespace),
		logger: logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// Put writes one field for a session, creating the state directory on first use.
func (s *Store) Put(sessionID string, field Field, value string) error {
	if err := os.MkdirAll(s.dir, stateDirPermissions); err != nil {
		return errors.Wrap(err, "creating state directory")
	}

	path := s.path(sessionID, field)

	if err := os.WriteFile(path, []byte(value), fieldFilePermissions); err != nil {
		return errors.Wrapf(err, "writing %s field", field)
	}

	s.logger.Debug("field written",
		"session_id", sessionID,
		"field", string(field),
	)

	return nil
}

// Get reads one field for a session. Returns ErrNotFound when absent.
func (s *Store) Get(sessionID string, field Field) (string, error) {
	// Path is derived from a sanitized session ID within our namespace.
	data, err := os.ReadFile(s.path(sessionID, field)) //nolint:gosec // G304
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}

		return "", errors.Wrapf(err, "reading %s field", field)
	}

	return string(data), nil
}

// Exists reports whether a field is present for a session.
func (s *Store) Exists(sessionID string, field Field) bool {
	_, err := os.Stat(s.path(sessionID, field))
	return err == nil
}

// Delete removes one field for a session. A missing field is not an error.
func (s *Store) Delete(sessionID string, field Field) error {
	err := os.Remove(s.path(sessionID, field))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting %s field", field)
	}

	return nil
}

// DeleteAll removes every field for a session, continuing past individual
// failures so one stuck file cannot leak the others.
func (s *Store) DeleteAll(sessionID string) error {
	var firstErr error

	for _, field := range Fields {
		if err := s.Delete(sessionID, field); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// path returns the file path for (field, sessionID).
func (s *Store) path(sessionID string, field Field) string {
	return filepath.Join(s.dir, string(field)+"-"+sanitize(sessionID))
}

// sanitize keeps externally supplied session IDs from escaping the state
// directory.
func sanitize(sessionID string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}

		return r
	}, sessionID)
}
