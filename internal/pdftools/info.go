package pdftools

import (
	"context"
	"strings"
)

const (
	// InfoHeader precedes metadata lines in a preview block.
	InfoHeader = "PDF Information:"
	// InfoUnavailable replaces metadata when pdfinfo fails. Metadata loss is
	// recoverable and never propagated as an error.
	InfoUnavailable = "PDF information unavailable"
)

// InfoRule is the separator printed under the metadata header.
var InfoRule = strings.Repeat("=", 50)

// InfoLines runs the info tool on path and returns display lines: the fixed
// header and rule followed by the tool's stdout split into lines, or a single
// placeholder line when the tool exits nonzero or cannot run.
func InfoLines(ctx context.Context, runner Runner, infoTool, path string) []string {
	if infoTool == "" {
		infoTool = InfoToolName
	}

	exitCode, stdout, err := runner.Run(ctx, infoTool, path)
	if err != nil || exitCode != 0 {
		return []string{InfoUnavailable}
	}

	lines := []string{InfoHeader, InfoRule}
	out := strings.TrimRight(stdout, "\n")
	if out == "" {
		return lines
	}
	return append(lines, strings.Split(out, "\n")...)
}
