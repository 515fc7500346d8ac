package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/XeonosXYZ/claude-code-notifier/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Loader", func() {
	var homeDir string

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
	})

	writeConfig := func(content string) {
		dir := filepath.Join(homeDir, internalconfig.GlobalConfigDir)
		Expect(os.MkdirAll(dir, 0o700)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(dir, internalconfig.GlobalConfigFile),
			[]byte(content), 0o600,
		)).To(Succeed())
	}

	Describe("Load", func() {
		It("should apply defaults when no config file exists", func() {
			loader := internalconfig.NewLoaderWithHome(homeDir)

			cfg, err := loader.Load()

			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.GetTimer().GetThresholdSeconds()).To(Equal(int64(60)))
			Expect(cfg.GetNotify().GetTimeoutSeconds()).To(Equal(10))
			Expect(cfg.GetNotify().GetPermissionTimeoutSeconds()).To(Equal(30))
			Expect(cfg.GetNotify().IsSoundEnabled()).To(BeTrue())
			Expect(cfg.GetNotify().GetTitle()).To(Equal("Claude Code"))
		})

		It("should merge the global TOML file over defaults", func() {
			writeConfig(`
[timer]
threshold_seconds = 120

[i18n]
language = "ko"
`)

			loader := internalconfig.NewLoaderWithHome(homeDir)
			cfg, err := loader.Load()

			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.GetTimer().GetThresholdSeconds()).To(Equal(int64(120)))
			Expect(cfg.GetI18n().GetLanguage()).To(Equal("ko"))
			Expect(cfg.GetNotify().GetTimeoutSeconds()).To(Equal(10))
		})

		It("should fail on invalid TOML", func() {
			writeConfig(`[timer` + "\n")

			loader := internalconfig.NewLoaderWithHome(homeDir)
			_, err := loader.Load()

			Expect(err).To(MatchError(internalconfig.ErrInvalidTOML))
		})

		It("should let environment variables override the file", func() {
			writeConfig(`
[timer]
threshold_seconds = 120
`)
			GinkgoT().Setenv("CLAUDE_NOTIFIER_TIMER__THRESHOLD_SECONDS", "90")

			loader := internalconfig.NewLoaderWithHome(homeDir)
			cfg, err := loader.Load()

			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.GetTimer().GetThresholdSeconds()).To(Equal(int64(90)))
		})
	})
})
