package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	internalconfig "github.com/XeonosXYZ/claude-code-notifier/internal/config"
	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/internal/hooks"
	"github.com/XeonosXYZ/claude-code-notifier/internal/i18n"
	"github.com/XeonosXYZ/claude-code-notifier/internal/notify"
	"github.com/XeonosXYZ/claude-code-notifier/internal/parser"
	"github.com/XeonosXYZ/claude-code-notifier/internal/store"
	"github.com/XeonosXYZ/claude-code-notifier/internal/timer"
	"github.com/XeonosXYZ/claude-code-notifier/internal/window"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/config"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

// app holds the wired components for one hook invocation.
type app struct {
	handler *hooks.Handler
	parser  *parser.JSONParser
	logger  logger.Logger
	logFile *os.File
}

// newApp wires the full component graph.
//
// Every setup failure degrades: a broken config falls back to defaults and a
// broken log path falls back to a no-op logger. The hook must run regardless.
func newApp() *app {
	cfg := loadConfig()
	log, logFile := newLogger(cfg.GetLog())

	runner := exec.NewCommandRunner(exec.DefaultTimeout)
	checker := exec.NewToolChecker()

	windows := window.New(runtime.GOOS, runner, checker, log.With("component", "window"))

	bundle := resolveBundle(cfg.GetI18n(), runner, log)

	st := store.New(
		store.WithDir(cfg.GetStore().GetDir()),
		store.WithLogger(log.With("component", "store")),
	)

	evaluator := timer.NewEvaluator(st, bundle, cfg.GetTimer().GetThresholdSeconds(),
		timer.WithLogger(log.With("component", "timer")),
	)

	notifier := notify.NewNotifier(cfg.GetNotify(), runtime.GOOS, runner, checker,
		windows, log.With("component", "notify"))

	handler := hooks.NewHandler(st, windows, evaluator, notifier, bundle,
		cfg.GetNotify(), log.With("component", "hooks"))

	return &app{
		handler: handler,
		parser:  parser.NewJSONParser(os.Stdin, log.With("component", "parser")),
		logger:  log,
		logFile: logFile,
	}
}

// close releases the log file, if any.
func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// loadConfig loads the configuration, degrading to defaults on any failure.
func loadConfig() *config.Config {
	loader, err := internalconfig.NewLoader()
	if err != nil {
		return &config.Config{}
	}

	cfg, err := loader.Load()
	if err != nil {
		return &config.Config{}
	}

	return cfg
}

// newLogger opens the file logger, degrading to a no-op logger when the log
// path is unusable.
//
//nolint:ireturn // Callers only need the Logger interface
func newLogger(logCfg *config.LogConfig) (logger.Logger, *os.File) {
	path := expandHome(logCfg.GetFile())

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logger.NewNoOpLogger(), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logger.LogFilePermissions)
	if err != nil {
		return logger.NewNoOpLogger(), nil
	}

	return logger.NewFileLoggerWithWriter(file, debugMode || logCfg.IsDebug()), file
}

// resolveBundle returns the message bundle, honoring a pinned language and
// otherwise detecting the OS locale.
func resolveBundle(i18nCfg *config.I18nConfig, runner exec.CommandRunner, log logger.Logger) *i18n.Bundle {
	if pinned := i18nCfg.GetLanguage(); pinned != "" {
		return i18n.NewBundle(i18n.Language(pinned))
	}

	resolver := i18n.NewResolver(runtime.GOOS, runner,
		i18n.WithLogger(log.With("component", "i18n")),
	)

	return i18n.NewBundle(resolver.Resolve(context.Background()))
}

// expandHome expands a leading ~/ in the path.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	return path
}
