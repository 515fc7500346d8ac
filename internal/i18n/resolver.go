// Package i18n provides locale detection and localized notification messages.
package i18n

import (
	"context"
	"os"
	"strings"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// localeEnvVars are consulted in precedence order on Unix-like systems.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Resolver maps the host OS locale to a supported language.
type Resolver struct {
	goos   string
	getenv func(string) string
	runner exec.CommandRunner
	logger logger.Logger
}

// ResolverOption configures the Resolver.
type ResolverOption func(*Resolver)

// WithGetenv sets a custom environment lookup for testing.
func WithGetenv(fn func(string) string) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.getenv = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}

// NewResolver creates a Resolver for the given OS.
func NewResolver(goos string, runner exec.CommandRunner, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		goos:   goos,
		getenv: defaultGetenv,
		runner: runner,
		logger: logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the host language, falling back to the base language when
// the locale cannot be determined or is unsupported.
func (r *Resolver) Resolve(ctx context.Context) Language {
	var tag string

	if r.goos == "windows" {
		tag = r.windowsLocale(ctx)
	} else {
		tag = r.unixLocale()
	}

	lang := normalize(tag)
	if !IsSupported(lang) {
		r.logger.Debug("unsupported locale, using base language",
			"tag", tag,
		)

		return BaseLanguage
	}

	return lang
}

// unixLocale reads the locale from environment variables.
func (r *Resolver) unixLocale() string {
	for _, name := range localeEnvVars {
		if value := r.getenv(name); value != "" && value != "C" && value != "POSIX" {
			return value
		}
	}

	return ""
}

// windowsLocale queries the configured culture via PowerShell.
func (r *Resolver) windowsLocale(ctx context.Context) string {
	result := r.runner.Run(ctx, "powershell",
		"-NoProfile", "-NonInteractive", "-Command", "(Get-Culture).Name")
	if result.Failed() {
		r.logger.Debug("locale query failed", "error", result.Err)

		return ""
	}

	return strings.TrimSpace(result.Stdout)
}

// normalize reduces a locale tag like "ko_KR.UTF-8" or "ko-KR" to its
// language code.
func normalize(tag string) Language {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag == "" {
		return ""
	}

	for _, sep := range []string{".", "@", "_", "-"} {
		if idx := strings.Index(tag, sep); idx >= 0 {
			tag = tag[:idx]
		}
	}

	return Language(tag)
}

func defaultGetenv(name string) string {
	return os.Getenv(name)
}
