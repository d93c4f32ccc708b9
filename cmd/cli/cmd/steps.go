package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// stepsCmd represents the steps command
var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the step phrases feature files can use",
	RunE:  listSteps,
}

func init() {
	stepsCmd.Flags().Bool("json", false, "Print the steps with parameter schemas as JSON")
	rootCmd.AddCommand(stepsCmd)
}

// listSteps executes the steps command
func listSteps(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	container, err := newContainer(GetConfig(cmd))
	if err != nil {
		return errors.Wrap(err, "failed to initialize container")
	}
	defer container.Close()

	descriptions := container.Catalog().Describe()
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(descriptions)
	}

	for _, d := range descriptions {
		fmt.Fprintf(out, "%-5s %s\n", d.Keyword, d.Pattern)
		if d.Launches != "" {
			fmt.Fprintf(out, "      starts %s\n", d.Launches)
		}
	}
	return nil
}
