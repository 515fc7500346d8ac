package exec

import "os/exec"

// ToolChecker checks for tool availability in PATH.
type ToolChecker interface {
	// IsAvailable checks if a tool is available in PATH.
	IsAvailable(tool string) bool

	// FindTool returns the first available tool from the list of alternatives.
	// Returns empty string if none are available.
	FindTool(alternatives ...string) string
}

// toolChecker implements ToolChecker.
type toolChecker struct{}

// NewToolChecker creates a new ToolChecker.
func NewToolChecker() *toolChecker {
	return &toolChecker{}
}

// IsAvailable checks if a tool is available in PATH.
func (*toolChecker) IsAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// FindTool returns the first available tool from the list of alternatives.
func (t *toolChecker) FindTool(alternatives ...string) string {
	for _, tool := range alternatives {
		if t.IsAvailable(tool) {
			return tool
		}
	}

	return ""
}
