package git

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Runner executes an external command. A process that ran and exited non-zero
// is reported by exitCode with a nil error; err is for commands that could
// not run at all.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (exitCode int, err error)
}

// ExecRunner runs commands with os/exec and streams their output.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

func (x *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = x.stdout
	cmd.Stderr = x.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
