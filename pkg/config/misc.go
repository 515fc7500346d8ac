package config

// DefaultLogFile is the default log file path.
const DefaultLogFile = "~/.claude-code-notifier/notifier.log"

// I18nConfig contains configuration for message language selection.
type I18nConfig struct {
	// Language pins the message language to a supported code
	// (en, ko, ja, zh, de, fr, es). Empty means detect from the OS locale.
	// Default: "" (detect)
	Language string `json:"language,omitempty" koanf:"language" toml:"language"`
}

// GetLanguage returns the pinned language code, possibly empty.
func (i *I18nConfig) GetLanguage() string {
	if i == nil {
		return ""
	}

	return i.Language
}

// StoreConfig contains configuration for the session state store.
type StoreConfig struct {
	// Dir overrides the state directory. Empty means the default location
	// under the system temp directory.
	// Default: "" (<tmpdir>/claude-code-notifier)
	Dir string `json:"dir,omitempty" koanf:"dir" toml:"dir"`
}

// GetDir returns the state directory override, possibly empty.
func (s *StoreConfig) GetDir() string {
	if s == nil {
		return ""
	}

	return s.Dir
}

// LogConfig contains configuration for the file logger.
type LogConfig struct {
	// File is the log file path. A leading ~/ expands to the home directory.
	// Default: "~/.claude-code-notifier/notifier.log"
	File string `json:"file,omitempty" koanf:"file" toml:"file"`

	// Debug enables debug-level logging.
	// Default: false
	Debug bool `json:"debug,omitempty" koanf:"debug" toml:"debug"`
}

// GetFile returns the log file path.
func (l *LogConfig) GetFile() string {
	if l == nil || l.File == "" {
		return DefaultLogFile
	}

	return l.File
}

// IsDebug returns true if debug logging is enabled.
func (l *LogConfig) IsDebug() bool {
	return l != nil && l.Debug
}
