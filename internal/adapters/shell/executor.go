// Package shell provides a subprocess executor built on os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor. The child inherits the parent's
// environment; stream wiring is up to the caller, which lets the converter
// capture diagnostics while the final interpreter gets the terminal.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs path with args and waits for it to complete.
func (e *Executor) Execute(
	ctx context.Context,
	path string,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // user provided command
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return zerr.With(
				zerr.Wrap(&domain.ExitStatusError{Code: code}, "command failed"),
				"exit_code", code,
			)
		}
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", path)
	}

	return nil
}
