package cmd

import (
	"display-acceptance/internal/infrastructure/adapter/suite"
	"display-acceptance/internal/infrastructure/config"
	"display-acceptance/internal/infrastructure/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// newContainer builds the dependency container for a run. Tests replace it to
// script operator input.
var newContainer = config.NewContainer

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [feature paths...]",
	Short: "Run feature files with an operator at the console",
	Long: `Run the given feature files or directories (default: features).

The run blocks on every step until the operator answers. Press Ctrl+C twice
to stop it. The exit status is 0 when every scenario passed and 1 when a
step was aborted or failed.`,
	RunE: runSuite,
}

func init() {
	defaults := config.Defaults()

	runCmd.Flags().String("format", defaults.Format, "Report format (pretty, progress, cucumber, junit, events)")
	runCmd.Flags().StringP("tags", "t", "", "Only run scenarios matching this tag expression")
	runCmd.Flags().Bool("strict", defaults.Strict, "Fail on undefined or pending steps")
	runCmd.Flags().Bool("stop-on-failure", false, "Stop at the first failed scenario")
	runCmd.Flags().Bool("no-colors", false, "Disable colored report output")
	runCmd.Flags().String("input-mode", defaults.InputMode, "How answers are read: plain or interactive")
	runCmd.Flags().String("comment-log", "", "Append operator comments to this file instead of stderr")
	runCmd.Flags().Duration("interrupt-timeout", defaults.InterruptTimeout, "Window for the second Ctrl+C that stops the run")

	bindFlag("format", runCmd, "format")
	bindFlag("tags", runCmd, "tags")
	bindFlag("strict", runCmd, "strict")
	bindFlag("stopOnFailure", runCmd, "stop-on-failure")
	bindFlag("noColors", runCmd, "no-colors")
	bindFlag("inputMode", runCmd, "input-mode")
	bindFlag("commentLog", runCmd, "comment-log")
	bindFlag("interruptTimeout", runCmd, "interrupt-timeout")

	rootCmd.AddCommand(runCmd)
}

// runSuite executes the run command
func runSuite(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd)
	if len(args) > 0 {
		cfg.FeaturePaths = args
	}

	container, err := newContainer(cfg, config.WithReportOutput(cmd.OutOrStdout()))
	if err != nil {
		return errors.Wrap(err, "failed to initialize container")
	}
	defer container.Close()

	handler := signal.NewInterruptHandler(cfg.InterruptTimeout, cmd.ErrOrStderr())
	handler.Start()
	defer handler.Stop()

	if status := container.Runner().Run(cmd.Context()); status != suite.ExitPassed {
		return &ExitError{Code: status}
	}
	return nil
}
