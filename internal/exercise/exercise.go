// Package exercise defines the exercise manifest and how exercises are run.
package exercise

import (
	"bytes"
	"context"
	"path/filepath"
)

// OutputCapacity pre-sizes output capture buffers so a typical compiler
// error or test log fits without reallocation.
const OutputCapacity = 1 << 14

// Exercise is a single entry from the info.toml manifest.
type Exercise struct {
	// Name identifies the exercise and its file, e.g. "variables1".
	Name string
	// Dir is the subdirectory under exercises/, e.g. "01_variables".
	Dir string
	// Test selects `go test` over `go run` for this exercise.
	Test bool
	// Hint is shown on demand in watch mode. Markdown.
	Hint string
	// Done reflects the persisted completion flag.
	Done bool
}

// Path returns the exercise source file path relative to the workspace root.
func (e *Exercise) Path() string {
	return filepath.Join("exercises", e.Dir, e.Name+".go")
}

// TestDir returns the package directory for test exercises.
func (e *Exercise) TestDir() string {
	return filepath.Join("exercises", e.Dir)
}

// Run executes the exercise with the given runner, capturing combined
// output into out. The boolean reports whether the exercise passed; a
// failing exercise is a normal outcome, not an error.
func (e *Exercise) Run(ctx context.Context, out *bytes.Buffer, runner CmdRunner) (bool, error) {
	if e.Test {
		return runner.Run(ctx, out, "go", "test", "./"+e.TestDir())
	}
	return runner.Run(ctx, out, "go", "run", "./"+e.Path())
}
