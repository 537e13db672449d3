package exercise

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CmdRunner executes a command and reports whether it exited successfully.
// The capture buffer is fully overwritten on each run, never appended to.
// This abstraction allows faking command execution in tests.
type CmdRunner interface {
	Run(ctx context.Context, out *bytes.Buffer, name string, args ...string) (success bool, err error)
}

// ExecRunner implements CmdRunner using os/exec.
type ExecRunner struct {
	// Dir is the working directory for commands. Empty means the
	// current directory (the exercise workspace root).
	Dir string
}

// Run executes the command with stdout and stderr both directed into out.
// A non-zero exit status is reported as success=false with a nil error;
// only failures to start the command at all are errors.
func (r *ExecRunner) Run(ctx context.Context, out *bytes.Buffer, name string, args ...string) (bool, error) {
	out.Reset()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

var _ CmdRunner = (*ExecRunner)(nil)
