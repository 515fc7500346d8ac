// Package hook provides payload types for the coding-assistant hook events.
package hook

// DefaultSessionID is used when the host payload carries no session_id.
const DefaultSessionID = "default"

// ExcerptLength is the number of characters kept from prompts and tool details.
const ExcerptLength = 50

// PromptSubmitPayload is the stdin payload for the prompt-submit event.
type PromptSubmitPayload struct {
	// SessionID is the opaque identifier for the task lifecycle.
	SessionID string `json:"session_id,omitempty"`

	// Prompt is the user's submitted prompt text.
	Prompt string `json:"prompt,omitempty"`
}

// StopPayload is the stdin payload for the task-stop event.
type StopPayload struct {
	// SessionID is the opaque identifier for the task lifecycle.
	SessionID string `json:"session_id,omitempty"`
}

// ToolInput carries the tool parameters relevant to permission prompts.
type ToolInput struct {
	// FilePath is the target path for file operations.
	FilePath string `json:"file_path,omitempty"`

	// Command is the shell command for Bash-style tools.
	Command string `json:"command,omitempty"`
}

// PermissionPayload is the stdin payload for the permission-request event.
type PermissionPayload struct {
	// SessionID is the opaque identifier for the task lifecycle.
	SessionID string `json:"session_id,omitempty"`

	// ToolName is the name of the tool awaiting permission.
	ToolName string `json:"tool_name,omitempty"`

	// ToolInput contains the tool-specific input parameters.
	ToolInput ToolInput `json:"tool_input,omitempty"`
}

// Session returns the session ID, defaulting when absent from the payload.
func (p *PromptSubmitPayload) Session() string {
	return orDefault(p.SessionID)
}

// Session returns the session ID, defaulting when absent from the payload.
func (p *StopPayload) Session() string {
	return orDefault(p.SessionID)
}

// Session returns the session ID, defaulting when absent from the payload.
func (p *PermissionPayload) Session() string {
	return orDefault(p.SessionID)
}

// Detail returns the tool detail for a permission prompt, preferring the
// file path over the command.
func (p *PermissionPayload) Detail() string {
	if p.ToolInput.FilePath != "" {
		return p.ToolInput.FilePath
	}

	return p.ToolInput.Command
}

func orDefault(sessionID string) string {
	if sessionID == "" {
		return DefaultSessionID
	}

	return sessionID
}

// Excerpt truncates s to ExcerptLength characters.
//
// Truncation counts runes, not bytes, so multi-byte prompts are not cut
// mid-character.
func Excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= ExcerptLength {
		return s
	}

	return string(runes[:ExcerptLength])
}
