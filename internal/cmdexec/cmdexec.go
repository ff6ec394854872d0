// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunInteractive executes an external command attached to the current
	// terminal (stdin, stdout, stderr) and blocks until it exits.
	// env is merged on top of the current process environment.
	RunInteractive(ctx context.Context, env map[string]string, name string, args ...string) error
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

var _ Commander = (*RealCommander)(nil)

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RunInteractive starts the command with inherited stdio and waits for it.
// A non-zero exit of the child is not an error: the user ended the session.
func (c *RealCommander) RunInteractive(ctx context.Context, env map[string]string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmdexec.RunInteractive: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("cmdexec.RunInteractive: %w", err)
	}
	return nil
}

// mapToEnvSlice converts a map of environment variables to a slice of "KEY=VALUE" strings.
// Keys are sorted so the resulting environment is deterministic.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(env))
	for _, k := range keys {
		result = append(result, fmt.Sprintf("%s=%s", k, env[k]))
	}
	return result
}
