package pdftools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRasterizeArgs(t *testing.T) {
	args, output := BuildRasterizeArgs("/docs/report.pdf", "/tmp/scratch-1", 0)

	assert.Equal(t, []string{
		"-f", "1",
		"-l", "1",
		"-png",
		"-scale-to-x", "800",
		"-scale-to-y", "-1",
		"/docs/report.pdf",
		"/tmp/scratch-1/preview",
	}, args)
	assert.Equal(t, "/tmp/scratch-1/preview-1.png", output)
}

func TestBuildRasterizeArgs_CustomWidth(t *testing.T) {
	args, output := BuildRasterizeArgs("/docs/report.pdf", "/tmp/scratch-2", 1200)

	assert.Contains(t, args, "1200")
	assert.NotContains(t, args, "800")
	assert.Equal(t, "/tmp/scratch-2/preview-1.png", output)
}

func TestBuildRasterizeArgs_FirstPageOnly(t *testing.T) {
	args, _ := BuildRasterizeArgs("a.pdf", "dir", 800)

	// Both page range flags restrict to the first page.
	assert.Equal(t, "-f", args[0])
	assert.Equal(t, "1", args[1])
	assert.Equal(t, "-l", args[2])
	assert.Equal(t, "1", args[3])
}
