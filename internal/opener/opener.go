// Package opener launches the OS "open with default application" command as
// a detached process. The spawned process is fully decoupled from the picker
// and outlives it.
package opener

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Args returns the opener command line for the given OS and file path.
func Args(goos, path string) []string {
	switch goos {
	case "darwin":
		return []string{"open", path}
	case "windows":
		// start is a cmd builtin; the empty string is the window title slot.
		return []string{"cmd", "/c", "start", "", path}
	default: // linux, freebsd, etc.
		return []string{"xdg-open", path}
	}
}

// Open resolves path and spawns the platform opener without waiting for it.
// A spawn failure is returned so the caller can surface it; the launched
// process itself is never observed again.
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	argv := Args(runtime.GOOS, abs)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", abs, err)
	}

	// Detach so the child is not tied to our process lifetime.
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}
