package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running external processes.
//
// Both collaborators of the core go through it: the conversion tool (with
// captured output, so diagnostics can be attached to errors) and the final
// interpreter (with the caller's terminal streams passed through).
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs path with args, wiring the given streams to the child.
	// A non-zero exit status is reported as an error wrapping
	// domain.ExitStatusError.
	Execute(ctx context.Context, path string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}
