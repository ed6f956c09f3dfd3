package preview

import (
	"github.com/krivenkov/pdfpeek/internal/pdftools"
)

const (
	successTitle = "✅ PDF Preview Generated"
	failureTitle = "❌ PDF Preview Failed"
	nonPDFTitle  = "📄 Not a PDF file"

	// genericFailure is shown when rendering fails even though both tools
	// are present; the tools do not report a usable reason.
	genericFailure = "PDF conversion failed for unknown reason"

	imageTip = "Tip: terminals with inline image support (kitty, wezterm) can display the generated thumbnail directly"
)

// SuccessBlock builds the display lines for a completed render. The metadata
// lines come from pdftools.InfoLines and are appended verbatim.
func SuccessBlock(fileName, absPath, imagePath string, metadata []string) []string {
	lines := []string{
		successTitle,
		"File: " + fileName,
		"Path: " + absPath,
		"Image: " + imagePath,
		"",
		imageTip,
		"",
	}
	return append(lines, metadata...)
}

// FailureBlock builds the display lines for a failed preview. When a
// dependency is missing the block itemizes each tool's status with an
// install hint; otherwise the failure is reported generically.
func FailureBlock(fileName string, deps pdftools.Dependencies) []string {
	lines := []string{
		failureTitle,
		"File: " + fileName,
	}
	if deps.All() {
		return append(lines, genericFailure)
	}
	lines = append(lines,
		"",
		"Missing dependencies:",
		"  "+pdftools.RasterizerName+": "+statusWord(deps.Rasterizer),
		"  "+pdftools.InfoToolName+": "+statusWord(deps.InfoTool),
		"",
		pdftools.InstallHint,
	)
	return lines
}

// NonPDFBlock builds the display lines for a file the previewer does not
// render. The extension reads "unknown" when the name has none.
func NonPDFBlock(fileName, ext string) []string {
	if ext == "" {
		ext = "unknown"
	}
	return []string{
		nonPDFTitle,
		"File: " + fileName,
		"Type: " + ext,
	}
}

func statusWord(present bool) string {
	if present {
		return "present"
	}
	return "missing"
}
