package notify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/XeonosXYZ/claude-code-notifier/internal/exec"
	"github.com/XeonosXYZ/claude-code-notifier/internal/notify"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/config"
	"github.com/XeonosXYZ/claude-code-notifier/pkg/logger"
)

func TestNotify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notify Suite")
}

// fakeRunner scripts command results and records invocations.
type fakeRunner struct {
	result *exec.CommandResult

	runCalls   [][]string
	startCalls [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) *exec.CommandResult {
	f.runCalls = append(f.runCalls, append([]string{name}, args...))

	if f.result == nil {
		return &exec.CommandResult{}
	}

	return f.result
}

func (f *fakeRunner) RunWithTimeout(_ time.Duration, name string, args ...string) *exec.CommandResult {
	return f.Run(context.Background(), name, args...)
}

func (f *fakeRunner) StartDetached(name string, args ...string) error {
	f.startCalls = append(f.startCalls, append([]string{name}, args...))

	return nil
}

// fakeChecker scripts tool availability.
type fakeChecker struct {
	available map[string]bool
}

func (f *fakeChecker) IsAvailable(tool string) bool {
	return f.available[tool]
}

func (f *fakeChecker) FindTool(alternatives ...string) string {
	for _, tool := range alternatives {
		if f.available[tool] {
			return tool
		}
	}

	return ""
}

// recordingAdapter records activation requests.
type recordingAdapter struct {
	activated []string
}

func (*recordingAdapter) Capture(context.Context) (string, bool) {
	return "", false
}

func (r *recordingAdapter) Activate(_ context.Context, handle string) {
	r.activated = append(r.activated, handle)
}

var _ = Describe("Notifier", func() {
	var (
		cfg     *config.NotifyConfig
		runner  *fakeRunner
		checker *fakeChecker
		adapter *recordingAdapter
	)

	BeforeEach(func() {
		cfg = &config.NotifyConfig{}
		runner = &fakeRunner{}
		checker = &fakeChecker{available: map[string]bool{}}
		adapter = &recordingAdapter{}
	})

	newNotifier := func(goos string) *notify.Notifier {
		return notify.NewNotifier(cfg, goos, runner, checker, adapter, logger.NewNoOpLogger())
	}

	Describe("Send on darwin", func() {
		BeforeEach(func() {
			checker.available["terminal-notifier"] = true
		})

		It("should pass the bundle identifier to -activate", func() {
			n := newNotifier("darwin")

			err := n.Send(context.Background(), notify.Notification{
				Title:        "Claude Code",
				Message:      "Completed (61 seconds)",
				WindowHandle: "com.googlecode.iterm2",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(runner.runCalls).To(HaveLen(1))
			Expect(runner.runCalls[0][0]).To(Equal("terminal-notifier"))
			Expect(runner.runCalls[0]).To(ContainElement("-activate"))
			Expect(runner.runCalls[0]).To(ContainElement("com.googlecode.iterm2"))
		})

		It("should use the default 10 second display timeout", func() {
			n := newNotifier("darwin")

			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "com.apple.Terminal",
			})

			Expect(runner.runCalls[0]).To(ContainElement("10"))
		})

		It("should honor a caller-supplied timeout", func() {
			n := newNotifier("darwin")

			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "com.apple.Terminal",
				Timeout:      30 * time.Second,
			})

			Expect(runner.runCalls[0]).To(ContainElement("30"))
		})

		It("should request a sound by default", func() {
			n := newNotifier("darwin")

			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "com.apple.Terminal",
			})

			Expect(runner.runCalls[0]).To(ContainElement("-sound"))
		})

		It("should only attach an icon that exists on disk", func() {
			iconPath := filepath.Join(GinkgoT().TempDir(), "icon.png")
			Expect(os.WriteFile(iconPath, []byte("png"), 0o600)).To(Succeed())
			cfg.Icon = iconPath

			n := newNotifier("darwin")
			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "com.apple.Terminal",
			})

			Expect(runner.runCalls[0]).To(ContainElement(iconPath))
		})

		It("should omit a missing icon without error", func() {
			cfg.Icon = "/nonexistent/icon.png"

			n := newNotifier("darwin")
			err := n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "com.apple.Terminal",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(runner.runCalls[0]).NotTo(ContainElement("/nonexistent/icon.png"))
		})
	})

	Describe("Send on linux", func() {
		BeforeEach(func() {
			checker.available["notify-send"] = true
		})

		It("should post a focus action and wait", func() {
			n := newNotifier("linux")

			err := n.Send(context.Background(), notify.Notification{
				Title:        "Claude Code",
				Message:      "Completed (61 seconds)",
				WindowHandle: "60817415",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(runner.runCalls[0][0]).To(Equal("notify-send"))
			Expect(runner.runCalls[0]).To(ContainElement("--action=default=Focus"))
			Expect(runner.runCalls[0]).To(ContainElement("--wait"))
		})

		It("should activate the window when the action fires", func() {
			runner.result = &exec.CommandResult{Stdout: "default\n"}

			n := newNotifier("linux")
			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "60817415",
			})

			Expect(adapter.activated).To(Equal([]string{"60817415"}))
		})

		It("should not activate when the notification expires", func() {
			runner.result = &exec.CommandResult{Stdout: ""}

			n := newNotifier("linux")
			_ = n.Send(context.Background(), notify.Notification{
				Title:        "t",
				Message:      "m",
				WindowHandle: "60817415",
			})

			Expect(adapter.activated).To(BeEmpty())
		})
	})

	Describe("Send without a window handle", func() {
		It("should not invoke the click-capable tools", func() {
			checker.available["terminal-notifier"] = true

			n := newNotifier("darwin")
			// beeep delivery may fail in a headless environment; only the
			// routing matters here.
			_ = n.Send(context.Background(), notify.Notification{
				Title:   "t",
				Message: "m",
			})

			Expect(runner.runCalls).To(BeEmpty())
		})
	})
})
