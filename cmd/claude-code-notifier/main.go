// Package main provides the CLI entry point for claude-code-notifier.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var debugMode bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "claude-code-notifier",
	Short: "Desktop notifications for Claude Code task lifecycle events",
	Long: `claude-code-notifier sends desktop notifications for Claude Code lifecycle
events and lets a click on the notification refocus the terminal window that
triggered it. It is invoked by Claude Code hooks with a JSON payload on stdin.`,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return errors.New("missing subcommand")
	},
}

var startTimerCmd = &cobra.Command{
	Use:   "start-timer",
	Short: "Record the task start time, prompt excerpt, and active window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		defer app.close()

		payload := app.parser.PromptSubmit()
		if err := app.handler.PromptSubmit(cmd.Context(), payload); err != nil {
			// The host lifecycle must never fail on our account.
			app.logger.Error("start-timer failed", "error", err)
		}

		return nil
	},
}

var checkDurationCmd = &cobra.Command{
	Use:   "check-duration",
	Short: "Evaluate the finished task and notify if it ran long enough",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		defer app.close()

		payload := app.parser.Stop()
		if err := app.handler.Stop(cmd.Context(), payload); err != nil {
			app.logger.Error("check-duration failed", "error", err)
		}

		return nil
	},
}

var permissionRequestCmd = &cobra.Command{
	Use:   "permission-request",
	Short: "Notify that a tool is waiting for permission",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		defer app.close()

		payload := app.parser.Permission()
		if err := app.handler.PermissionRequest(cmd.Context(), payload); err != nil {
			app.logger.Error("permission-request failed", "error", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(startTimerCmd)
	rootCmd.AddCommand(checkDurationCmd)
	rootCmd.AddCommand(permissionRequestCmd)
}
