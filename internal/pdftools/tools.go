// Package pdftools wraps the external poppler utilities used to preview PDF
// files: pdftoppm for first-page thumbnails and pdfinfo for document metadata.
package pdftools

import (
	"os"
	"os/exec"
)

const (
	// RasterizerName is the poppler PDF-to-image tool.
	RasterizerName = "pdftoppm"
	// InfoToolName is the poppler metadata extraction tool.
	InfoToolName = "pdfinfo"
)

// InstallHint tells the user how to get the poppler utilities.
const InstallHint = "Install poppler-utils to enable PDF previews (apt install poppler-utils / brew install poppler)"

// Dependencies reports which external tools are present. It is computed
// fresh on every check so a newly installed or removed tool is picked up
// immediately.
type Dependencies struct {
	Rasterizer bool
	InfoTool   bool
}

// All reports whether every required tool is present.
func (d Dependencies) All() bool {
	return d.Rasterizer && d.InfoTool
}

// Prober resolves a tool name to its availability on the current system.
type Prober interface {
	Probe(name string) bool
}

// Check probes both required tools under the given names or paths, falling
// back to the defaults when empty. Absence is a normal result, not an error.
func Check(p Prober, rasterizer, infoTool string) Dependencies {
	if rasterizer == "" {
		rasterizer = RasterizerName
	}
	if infoTool == "" {
		infoTool = InfoToolName
	}
	return Dependencies{
		Rasterizer: p.Probe(rasterizer),
		InfoTool:   p.Probe(infoTool),
	}
}

// ExecProber probes the real environment using PATH lookup with a fallback
// over common installation prefixes.
type ExecProber struct{}

func (ExecProber) Probe(name string) bool {
	_, ok := Locate(name)
	return ok
}

// Locate finds a tool binary in PATH or in common installation locations.
func Locate(name string) (string, bool) {
	if path, err := exec.LookPath(name); err == nil {
		return path, true
	}

	// Check common installation paths
	prefixes := []string{
		"/usr/local/bin/",
		"/usr/bin/",
		"/opt/homebrew/bin/",
		"/opt/bin/",
	}
	for _, prefix := range prefixes {
		candidate := prefix + name
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	return "", false
}
