package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrStart indicates the child process could not be started.
var ErrStart = errors.New("failed to start process")

// Spec describes one child process.
type Spec struct {
	Name   string
	Args   []string
	Dir    string    // empty = current directory
	Stdout io.Writer // nil = discarded
	Stderr io.Writer // nil = discarded
}

// Run starts spec without a console window, waits for it and returns its
// exit code. A non-zero exit is not an error. When ctx is cancelled the
// whole process tree is killed and ctx.Err() is returned with exit code -1.
func Run(ctx context.Context, spec Spec) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	cmd := exec.Command(spec.Name, spec.Args...) // #nosec G204 -- command comes from user config
	cmd.Dir = spec.Dir
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	HideWindow(cmd)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %s: %w", ErrStart, spec.Name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		KillTree(cmd.Process.Pid)
		<-done
		return -1, ctx.Err()
	case err := <-done:
		return exitCode(err)
	}
}

// exitCode extracts the child's exit status from a Wait error.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
