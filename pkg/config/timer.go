package config

// DefaultThresholdSeconds is the minimum elapsed seconds before a completion
// notification is emitted.
const DefaultThresholdSeconds = 60

// TimerConfig contains configuration for the duration evaluator.
type TimerConfig struct {
	// ThresholdSeconds is the minimum task duration that triggers a
	// completion notification.
	// Default: 60
	ThresholdSeconds int64 `json:"threshold_seconds,omitempty" koanf:"threshold_seconds" toml:"threshold_seconds"`
}

// GetThresholdSeconds returns the notification threshold in seconds.
// Returns DefaultThresholdSeconds if unset or non-positive.
func (t *TimerConfig) GetThresholdSeconds() int64 {
	if t == nil || t.ThresholdSeconds <= 0 {
		return DefaultThresholdSeconds
	}

	return t.ThresholdSeconds
}
