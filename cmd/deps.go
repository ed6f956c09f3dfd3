package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krivenkov/pdfpeek/internal/config"
	"github.com/krivenkov/pdfpeek/internal/pdftools"
)

// depsCmd reports whether the external PDF tools are installed, honoring
// explicitly configured tool paths.
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the status of required external tools",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = config.Config{}
		}
		deps := pdftools.Check(pdftools.ExecProber{}, cfg.RasterizerPath, cfg.InfoToolPath)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", pdftools.RasterizerName, presence(deps.Rasterizer))
		fmt.Fprintf(out, "%s: %s\n", pdftools.InfoToolName, presence(deps.InfoTool))
		if !deps.All() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, pdftools.InstallHint)
		}
	},
}

func presence(present bool) string {
	if present {
		return "present"
	}
	return "missing"
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
