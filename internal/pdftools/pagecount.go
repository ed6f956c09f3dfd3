package pdftools

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageCount parses the document in pure Go and returns its page count. Used
// as a fallback when pdfinfo fails on an otherwise renderable document.
func PageCount(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	return reader.NumPage(), nil
}
