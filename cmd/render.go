package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renderCmd runs one preview cycle without the TUI and prints the formatted
// block, so pdfpeek can serve as an external previewer for other finders.
var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a single preview block to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := createLogger(loadCmdConfig())

		orch, err := buildOrchestrator(logger)
		if err != nil {
			return err
		}

		result := orch.Preview(cmd.Context(), args[0])
		for _, line := range result.Lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
