package pdftools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Runner executes an external tool and reports its exit code and captured
// stdout. A non-nil error means the process could not be run at all (bad
// binary, cancelled context); a nonzero exit code alone is not an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (exitCode int, stdout string, err error)
}

// ExecRunner runs tools as real subprocesses.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (int, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), stdout.String(), nil
		}
		return -1, "", &RunError{Tool: name, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	return 0, stdout.String(), nil
}

// RunError reports a tool that could not be executed at all.
type RunError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	msg := "failed to run " + e.Tool
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		stderr := e.Stderr
		if len(stderr) > 500 {
			stderr = stderr[:500] + "..."
		}
		msg += "\nstderr: " + stderr
	}
	return msg
}

func (e *RunError) Unwrap() error {
	return e.Err
}
