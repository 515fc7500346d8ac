package config

import "strings"

// envTransform maps CLAUDE_NOTIFIER_TIMER__THRESHOLD_SECONDS to
// timer.threshold_seconds: a double underscore separates nesting levels,
// single underscores stay part of the key.
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "__", ".")

	return key, value
}
