package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krivenkov/pdfpeek/internal/pdftools"
)

func TestNonPDFBlock(t *testing.T) {
	lines := NonPDFBlock("notes.txt", "txt")

	assert.Equal(t, []string{
		"📄 Not a PDF file",
		"File: notes.txt",
		"Type: txt",
	}, lines)
}

func TestNonPDFBlock_NoExtension(t *testing.T) {
	lines := NonPDFBlock("x", "")

	assert.Equal(t, "Type: unknown", lines[2])
}

func TestFailureBlock_MissingDependencies(t *testing.T) {
	tests := []struct {
		name       string
		deps       pdftools.Dependencies
		rasterLine string
		infoLine   string
	}{
		{
			name:       "rasterizer missing",
			deps:       pdftools.Dependencies{Rasterizer: false, InfoTool: true},
			rasterLine: "  pdftoppm: missing",
			infoLine:   "  pdfinfo: present",
		},
		{
			name:       "info tool missing",
			deps:       pdftools.Dependencies{Rasterizer: true, InfoTool: false},
			rasterLine: "  pdftoppm: present",
			infoLine:   "  pdfinfo: missing",
		},
		{
			name:       "both missing",
			deps:       pdftools.Dependencies{},
			rasterLine: "  pdftoppm: missing",
			infoLine:   "  pdfinfo: missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := FailureBlock("doc.pdf", tt.deps)

			assert.Equal(t, "❌ PDF Preview Failed", lines[0])
			assert.Equal(t, "File: doc.pdf", lines[1])
			assert.Contains(t, lines, tt.rasterLine)
			assert.Contains(t, lines, tt.infoLine)
			assert.Contains(t, lines, pdftools.InstallHint)
		})
	}
}

func TestFailureBlock_Generic(t *testing.T) {
	lines := FailureBlock("doc.pdf", pdftools.Dependencies{Rasterizer: true, InfoTool: true})

	assert.Equal(t, []string{
		"❌ PDF Preview Failed",
		"File: doc.pdf",
		"PDF conversion failed for unknown reason",
	}, lines)
}

func TestSuccessBlock(t *testing.T) {
	metadata := []string{"PDF Information:", "====", "Title: Report"}
	lines := SuccessBlock("doc.pdf", "/home/u/doc.pdf", "/tmp/s/preview-1.png", metadata)

	require.GreaterOrEqual(t, len(lines), 10)
	assert.Equal(t, "✅ PDF Preview Generated", lines[0])
	assert.Equal(t, "File: doc.pdf", lines[1])
	assert.Equal(t, "Path: /home/u/doc.pdf", lines[2])
	assert.Equal(t, "Image: /tmp/s/preview-1.png", lines[3])

	// Metadata lines are appended verbatim at the end.
	assert.Equal(t, metadata, lines[len(lines)-len(metadata):])
}
