// Package config provides configuration schema types for the notifier hooks.
package config

// Config represents the root configuration.
type Config struct {
	// Timer configures the completion-notification threshold.
	Timer *TimerConfig `json:"timer,omitempty" koanf:"timer" toml:"timer,omitempty"`

	// Notify configures the desktop notification backend.
	Notify *NotifyConfig `json:"notify,omitempty" koanf:"notify" toml:"notify,omitempty"`

	// I18n configures message language selection.
	I18n *I18nConfig `json:"i18n,omitempty" koanf:"i18n" toml:"i18n,omitempty"`

	// Store configures the session state store.
	Store *StoreConfig `json:"store,omitempty" koanf:"store" toml:"store,omitempty"`

	// Log configures the file logger.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty"`
}

// GetTimer returns the timer config, never nil for the caller's purposes.
func (c *Config) GetTimer() *TimerConfig {
	if c == nil {
		return nil
	}

	return c.Timer
}

// GetNotify returns the notify config, never nil for the caller's purposes.
func (c *Config) GetNotify() *NotifyConfig {
	if c == nil {
		return nil
	}

	return c.Notify
}

// GetI18n returns the i18n config, never nil for the caller's purposes.
func (c *Config) GetI18n() *I18nConfig {
	if c == nil {
		return nil
	}

	return c.I18n
}

// GetStore returns the store config, never nil for the caller's purposes.
func (c *Config) GetStore() *StoreConfig {
	if c == nil {
		return nil
	}

	return c.Store
}

// GetLog returns the log config, never nil for the caller's purposes.
func (c *Config) GetLog() *LogConfig {
	if c == nil {
		return nil
	}

	return c.Log
}
