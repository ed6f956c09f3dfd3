// Package preview turns a highlighted file into display text: PDF files get
// an externally rendered thumbnail plus metadata, everything else gets an
// informational block. No failure in here propagates as an error; every
// branch degrades to formatted lines.
package preview

import (
	"path/filepath"
	"strings"
)

// Request describes a single preview callback. It lives only for the
// lifetime of that callback and is never mutated after construction.
type Request struct {
	Path string
	Abs  string
	Name string
	Ext  string
}

// NewRequest resolves a picked path into a preview request.
func NewRequest(path string) Request {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Request{
		Path: path,
		Abs:  abs,
		Name: filepath.Base(path),
		Ext:  strings.TrimPrefix(filepath.Ext(path), "."),
	}
}

// IsPDF reports whether the file carries the literal ".pdf" suffix. The
// match is case-sensitive: rendering is only attempted for names the
// external tools conventionally produce and consume.
func (r Request) IsPDF() bool {
	return strings.HasSuffix(r.Name, ".pdf")
}
