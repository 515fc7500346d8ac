package parser_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/XeonosXYZ/claude-code-notifier/internal/parser"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

var _ = Describe("JSONParser", func() {
	newParser := func(input string) *parser.JSONParser {
		return parser.NewJSONParser(strings.NewReader(input), logger.NewNoOpLogger())
	}

	Describe("PromptSubmit", func() {
		It("should parse session ID and prompt", func() {
			payload := newParser(`{"session_id":"s1","prompt":"fix the bug"}`).PromptSubmit()

			Expect(payload.SessionID).To(Equal("s1"))
			Expect(payload.Prompt).To(Equal("fix the bug"))
		})

		It("should treat empty input as an empty payload", func() {
			payload := newParser("").PromptSubmit()

			Expect(payload.SessionID).To(BeEmpty())
			Expect(payload.Session()).To(Equal("default"))
		})

		It("should treat malformed input as an empty payload", func() {
			payload := newParser("not json at all {").PromptSubmit()

			Expect(payload.SessionID).To(BeEmpty())
			Expect(payload.Prompt).To(BeEmpty())
		})
	})

	Describe("Stop", func() {
		It("should parse the session ID", func() {
			payload := newParser(`{"session_id":"s2"}`).Stop()

			Expect(payload.SessionID).To(Equal("s2"))
		})

		It("should default the session ID when absent", func() {
			payload := newParser(`{}`).Stop()

			Expect(payload.Session()).To(Equal("default"))
		})
	})

	Describe("Permission", func() {
		It("should parse tool name and input", func() {
			payload := newParser(
				`{"session_id":"s1","tool_name":"Edit","tool_input":{"file_path":"/tmp/a.go"}}`,
			).Permission()

			Expect(payload.ToolName).To(Equal("Edit"))
			Expect(payload.ToolInput.FilePath).To(Equal("/tmp/a.go"))
		})

		It("should prefer file_path over command in the detail", func() {
			payload := newParser(
				`{"tool_input":{"file_path":"/tmp/a.go","command":"rm -rf /"}}`,
			).Permission()

			Expect(payload.Detail()).To(Equal("/tmp/a.go"))
		})

		It("should fall back to command when file_path is absent", func() {
			payload := newParser(
				`{"tool_input":{"command":"go test ./..."}}`,
			).Permission()

			Expect(payload.Detail()).To(Equal("go test ./..."))
		})
	})
})
