// Package config provides configuration loading for the notifier hooks.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/XeonosXYZ/claude-code-notifier/pkg/config"
)

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".claude-code-notifier"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "CLAUDE_NOTIFIER_"
)

// ErrInvalidTOML is returned when the TOML file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

// defaults seeds the koanf map before file and env sources are merged.
var defaults = map[string]any{
	"timer.threshold_seconds":           config.DefaultThresholdSeconds,
	"notify.timeout_seconds":            config.DefaultNotifyTimeoutSeconds,
	"notify.permission_timeout_seconds": config.DefaultPermissionTimeoutSeconds,
	"notify.sound":                      true,
	"notify.title":                      config.DefaultTitle,
	"log.file":                          config.DefaultLogFile,
}

// Loader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. Environment variables (CLAUDE_NOTIFIER_*)
// 2. Global config (~/.claude-code-notifier/config.toml)
// 3. Defaults
type Loader struct {
	k       *koanf.Koanf
	homeDir string
}

// NewLoader creates a Loader rooted at the user's home directory.
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return NewLoaderWithHome(homeDir), nil
}

// NewLoaderWithHome creates a Loader with a custom home directory (for testing).
func NewLoaderWithHome(homeDir string) *Loader {
	return &Loader{
		k:       koanf.New("."),
		homeDir: homeDir,
	}
}

// Load loads configuration from all sources with precedence.
func (l *Loader) Load() (*config.Config, error) {
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	configPath := filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		if err := l.k.Load(file.Provider(configPath), tomlparser.Parser()); err != nil {
			return nil, errors.CombineErrors(ErrInvalidTOML, err)
		}
	}

	if err := l.k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
