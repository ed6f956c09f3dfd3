package pdftools

import (
	"path/filepath"
	"strconv"
)

// DefaultScaleWidth is the horizontal pixel target for generated thumbnails;
// the vertical size follows the page aspect ratio.
const DefaultScaleWidth = 800

// outputStem is the filename stem pdftoppm writes under the scratch
// directory. With -f 1 -l 1 the tool appends the page number, so the
// first-page output lands at "<stem>-1.png".
const outputStem = "preview"

// BuildRasterizeArgs constructs the pdftoppm invocation that renders the
// first page of pdfPath as a PNG into scratchDir, and returns the path where
// the tool is expected to place its output. It does not execute anything.
func BuildRasterizeArgs(pdfPath, scratchDir string, scaleWidth int) (args []string, expectedOutput string) {
	if scaleWidth <= 0 {
		scaleWidth = DefaultScaleWidth
	}
	stem := filepath.Join(scratchDir, outputStem)
	args = []string{
		"-f", "1",
		"-l", "1",
		"-png",
		"-scale-to-x", strconv.Itoa(scaleWidth),
		"-scale-to-y", "-1",
		pdfPath,
		stem,
	}
	return args, stem + "-1.png"
}
