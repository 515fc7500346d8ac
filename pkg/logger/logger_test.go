package logger_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("FileLogger", func() {
	var (
		buf *bytes.Buffer
		log *logger.FileLogger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.NewFileLoggerWithWriter(buf, false)
	})

	Describe("Info", func() {
		It("should write level and message", func() {
			log.Info("session started")

			Expect(buf.String()).To(ContainSubstring("INFO session started"))
		})

		It("should format key-value pairs", func() {
			log.Info("session started", "session_id", "s1", "duration", 61)

			Expect(buf.String()).To(ContainSubstring("session_id=s1"))
			Expect(buf.String()).To(ContainSubstring("duration=61"))
		})

		It("should quote values containing spaces", func() {
			log.Info("prompt stored", "excerpt", "fix the bug")

			Expect(buf.String()).To(ContainSubstring(`excerpt="fix the bug"`))
		})

		It("should skip a trailing key without value", func() {
			log.Info("msg", "orphan")

			Expect(buf.String()).NotTo(ContainSubstring("orphan"))
		})
	})

	Describe("Debug", func() {
		It("should be suppressed when debug mode is off", func() {
			log.Debug("window captured")

			Expect(buf.String()).To(BeEmpty())
		})

		It("should write when debug mode is on", func() {
			debugLog := logger.NewFileLoggerWithWriter(buf, true)
			debugLog.Debug("window captured", "handle", "12345")

			Expect(buf.String()).To(ContainSubstring("DEBUG window captured handle=12345"))
		})
	})

	Describe("With", func() {
		It("should carry base key-value pairs into every entry", func() {
			scoped := log.With("session_id", "s1")
			scoped.Info("stop received")

			Expect(buf.String()).To(ContainSubstring("session_id=s1"))
		})
	})
})

var _ = Describe("NoOpLogger", func() {
	It("should implement the Logger interface silently", func() {
		var log logger.Logger = logger.NewNoOpLogger()

		log.Debug("ignored")
		log.Info("ignored")
		log.Error("ignored")
		Expect(log.With("k", "v")).NotTo(BeNil())
	})
})
