package cmd

import (
	"context"
	"display-acceptance/internal/infrastructure/config"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// global config shared between commands.
var cfg *config.Config

type configKey struct{}

func contextWithConfig(ctx context.Context, c *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, c)
}

func configFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return nil
}

// ExitError carries a non-zero exit status out of a command without printing
// an error message; the report already explains the failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "display-acceptance",
	Short: "Operator-driven acceptance tests for the display settings dialog",
	Long: `Display Acceptance runs Gherkin feature files against a human operator.

Every step prints an instruction and waits for one line of input:
  <ENTER>              confirm
  !<optional comment>  abort the step and fail the scenario
  <comment>            confirm and record the comment

Comments are written as "USER COMMENT (Step: ...): ..." lines to the
comment log, standard error by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		cfg = config.LoadConfig()

		// Store config in command context and package variable
		cmd.SetContext(contextWithConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts are handled by the run command, not by cancelling this context.
func Execute() error {
	rootCmd.SetContext(context.Background())
	return rootCmd.Execute()
}

// GetConfig retrieves the configuration from the command context.
func GetConfig(cmd *cobra.Command) *config.Config {
	// First try context, fall back to package variable
	if c := configFromContext(cmd.Context()); c != nil {
		return c
	}
	if cfg != nil {
		return cfg
	}
	return config.Defaults()
}

func bindFlag(key string, cmd *cobra.Command, name string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind %s flag: %v\n", name, err)
	}
}

func init() {
	defaults := config.Defaults()

	// Define flags
	rootCmd.PersistentFlags().String("display-app", defaults.DisplayApp, "Display settings application started by the launch steps")
	rootCmd.PersistentFlags().String("log-level", defaults.LogLevel, "Harness log level (debug, info, warn, error)")

	// Bind flags to viper
	if err := viper.BindPFlag("displayApp", rootCmd.PersistentFlags().Lookup("display-app")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind display-app flag: %v\n", err)
	}
	if err := viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind log-level flag: %v\n", err)
	}
}
