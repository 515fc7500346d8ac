package config

// Default values for notification configuration.
const (
	// DefaultNotifyTimeoutSeconds is the default notification display timeout.
	DefaultNotifyTimeoutSeconds = 10

	// DefaultPermissionTimeoutSeconds is the display timeout for permission
	// request notifications, which should stay visible longer.
	DefaultPermissionTimeoutSeconds = 30

	// DefaultTitle is the notification title.
	DefaultTitle = "Claude Code"
)

// NotifyConfig contains configuration for the desktop notification backend.
type NotifyConfig struct {
	// TimeoutSeconds is the display timeout for completion notifications.
	// Default: 10
	TimeoutSeconds int `json:"timeout_seconds,omitempty" koanf:"timeout_seconds" toml:"timeout_seconds"`

	// PermissionTimeoutSeconds is the display timeout for permission requests.
	// Default: 30
	PermissionTimeoutSeconds int `json:"permission_timeout_seconds,omitempty" koanf:"permission_timeout_seconds" toml:"permission_timeout_seconds"`

	// Icon is the path to the notification icon. Used only when the file
	// exists on disk.
	// Default: "" (backend default)
	Icon string `json:"icon,omitempty" koanf:"icon" toml:"icon"`

	// Sound controls whether the notification plays a sound.
	// Default: true
	Sound *bool `json:"sound,omitempty" koanf:"sound" toml:"sound"`

	// Title is the notification title.
	// Default: "Claude Code"
	Title string `json:"title,omitempty" koanf:"title" toml:"title"`
}

// GetTimeoutSeconds returns the completion notification display timeout.
func (n *NotifyConfig) GetTimeoutSeconds() int {
	if n == nil || n.TimeoutSeconds <= 0 {
		return DefaultNotifyTimeoutSeconds
	}

	return n.TimeoutSeconds
}

// GetPermissionTimeoutSeconds returns the permission request display timeout.
func (n *NotifyConfig) GetPermissionTimeoutSeconds() int {
	if n == nil || n.PermissionTimeoutSeconds <= 0 {
		return DefaultPermissionTimeoutSeconds
	}

	return n.PermissionTimeoutSeconds
}

// GetIcon returns the configured icon path, possibly empty.
func (n *NotifyConfig) GetIcon() string {
	if n == nil {
		return ""
	}

	return n.Icon
}

// IsSoundEnabled returns true if notification sound is enabled.
// Returns true if Sound is nil (default behavior).
func (n *NotifyConfig) IsSoundEnabled() bool {
	if n == nil || n.Sound == nil {
		return true
	}

	return *n.Sound
}

// GetTitle returns the notification title.
func (n *NotifyConfig) GetTitle() string {
	if n == nil || n.Title == "" {
		return DefaultTitle
	}

	return n.Title
}
