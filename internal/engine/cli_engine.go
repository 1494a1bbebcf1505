// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// CLIEngineOption configures a CLIEngine.
	CLIEngineOption func(*CLIEngine)

	// CLIEngine provides the shared execution machinery for CLI-based
	// container engines. Docker and Podman engines embed this struct;
	// engine-specific behavior (Available, Version) lives on the concrete
	// types. The engine holds no state across executions beyond the resolved
	// binary path.
	CLIEngine struct {
		name        string
		binaryPath  string
		execCommand ExecCommandFunc
	}
)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) CLIEngineOption {
	return func(e *CLIEngine) {
		e.execCommand = fn
	}
}

// WithBinaryPath overrides the resolved engine binary path.
func WithBinaryPath(path string) CLIEngineOption {
	return func(e *CLIEngine) {
		e.binaryPath = path
	}
}

// NewCLIEngine creates a new base engine for the given binary.
func NewCLIEngine(name, binaryPath string, opts ...CLIEngineOption) *CLIEngine {
	e := &CLIEngine{
		name:        name,
		binaryPath:  binaryPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine name used in messages (e.g., "docker").
func (e *CLIEngine) Name() string { return e.name }

// BinaryPath returns the path to the container engine binary, or "" when the
// binary was not found on PATH.
func (e *CLIEngine) BinaryPath() string { return e.binaryPath }

// RunCaptured executes an engine subcommand and captures both output streams.
// A non-zero exit is an expected engine outcome and is returned inside Result
// with a nil error. The returned error is non-nil only when no child process
// ran at all, in which case it is a *SpawnError.
func (e *CLIEngine) RunCaptured(ctx context.Context, args ...string) (Result, error) {
	cmd, err := e.command(ctx, args)
	if err != nil {
		return Result{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := Result{
		Stdout: strings.TrimRight(stdout.String(), "\n"),
		Stderr: strings.TrimRight(stderr.String(), "\n"),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return Result{}, &SpawnError{Binary: e.name, Args: args, Err: runErr}
		}
		res.ExitCode = exitErr.ExitCode()
	}

	return res, nil
}

// RunInteractive executes an engine subcommand with the child inheriting this
// process's terminal streams, and blocks until it exits. Nothing is captured:
// the terminal belongs to the child for the duration. Returns nil on exit
// status zero, *ExitError on a non-zero exit, and *SpawnError when no child
// process ran.
func (e *CLIEngine) RunInteractive(ctx context.Context, args ...string) error {
	cmd, err := e.command(ctx, args)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return &SpawnError{Binary: e.name, Args: args, Err: runErr}
		}
		return &ExitError{Binary: e.name, Code: exitErr.ExitCode()}
	}
	return nil
}

// command builds the exec.Cmd after checking the executor preconditions:
// a command is never executed with an empty token list, and a missing binary
// is a spawn fault, not an engine result.
func (e *CLIEngine) command(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, &SpawnError{Binary: e.name, Err: ErrEmptyCommand}
	}
	if e.binaryPath == "" {
		return nil, &SpawnError{Binary: e.name, Args: args, Err: exec.ErrNotFound}
	}
	return e.execCommand(ctx, e.binaryPath, args...), nil
}
