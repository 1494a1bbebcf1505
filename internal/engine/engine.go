// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
)

// Engine defines the execution contract against a container engine binary.
type Engine interface {
	// Name returns the engine name (docker or podman).
	Name() string
	// Available checks if the engine is usable on this system. It reports
	// false, never an error; the caller decides whether that is fatal.
	Available() bool
	// Version returns the engine's version line.
	Version(ctx context.Context) (string, error)
	// RunCaptured executes a subcommand and returns its captured output.
	RunCaptured(ctx context.Context, args ...string) (Result, error)
	// RunInteractive executes a subcommand attached to the caller's terminal.
	RunInteractive(ctx context.Context, args ...string) error
}

// Type identifies the container engine flavor.
type Type string

const (
	TypeAuto   Type = "auto"
	TypeDocker Type = "docker"
	TypePodman Type = "podman"
)

// ErrEngineNotAvailable is returned when no usable container engine is found.
type ErrEngineNotAvailable struct {
	Engine string
	Reason string
}

func (e *ErrEngineNotAvailable) Error() string {
	return fmt.Sprintf("container engine '%s' is not available: %s", e.Engine, e.Reason)
}

// Detect returns a usable engine for the given preference, falling back to
// the other flavor before giving up. The availability check happens exactly
// once, here; the returned engine is the explicit "engine is available" fact
// the rest of the program carries around.
func Detect(preferred Type) (Engine, error) {
	switch preferred {
	case TypeDocker:
		return firstAvailable(NewDockerEngine(), NewPodmanEngine())
	case TypePodman:
		return firstAvailable(NewPodmanEngine(), NewDockerEngine())
	case TypeAuto, "":
		// Docker first: it is the flavor the tool grew up with.
		return firstAvailable(NewDockerEngine(), NewPodmanEngine())
	default:
		return nil, fmt.Errorf("unknown container engine type: %s", preferred)
	}
}

func firstAvailable(engines ...Engine) (Engine, error) {
	for _, e := range engines {
		if e.Available() {
			return e, nil
		}
	}
	return nil, &ErrEngineNotAvailable{
		Engine: "any",
		Reason: "no container engine (docker or podman) is installed and responding",
	}
}
