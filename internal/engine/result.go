// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSpawn is the sentinel error wrapped by SpawnError.
	ErrSpawn = errors.New("engine command could not be spawned")

	// ErrEmptyCommand is the cause recorded by SpawnError when a caller hands
	// the executor an empty argument vector. No process is ever spawned.
	ErrEmptyCommand = errors.New("empty command")
)

type (
	// Result is the outcome of a captured execution. It exists only for
	// commands whose child process actually ran; spawn failures are reported
	// as SpawnError instead, so a Result never lies about execution.
	Result struct {
		// ExitCode is the child's exit status.
		ExitCode int
		// Stdout is the captured standard output, trailing newline trimmed.
		Stdout string
		// Stderr is the captured standard error, trailing newline trimmed.
		Stderr string
	}

	// SpawnError reports that no child process ran at all: the engine binary
	// was not found, the argument vector was empty, or the OS refused the
	// fork/exec. It is distinct from a non-zero exit, which is an expected
	// engine outcome and travels inside Result.
	SpawnError struct {
		Binary string
		Args   []string
		Err    error
	}

	// ExitError reports a non-zero exit from an interactive execution, where
	// no output was captured and the status code is all the caller gets.
	ExitError struct {
		Binary string
		Code   int
	}
)

// OK reports whether the captured command exited with status zero.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Error implements the error interface.
func (e *SpawnError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("spawn %s: %v", e.Binary, e.Err)
	}
	return fmt.Sprintf("spawn %s %s: %v", e.Binary, strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns ErrSpawn so callers can use errors.Is for programmatic detection.
func (e *SpawnError) Unwrap() error { return ErrSpawn }

// Cause returns the underlying OS-level error.
func (e *SpawnError) Cause() error { return e.Err }

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}
