// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"os/exec"
)

// PodmanEngine drives the Podman CLI. Podman mirrors the Docker command
// surface, so it shares every argument builder with DockerEngine.
type PodmanEngine struct {
	*CLIEngine
}

// NewPodmanEngine creates a new Podman engine.
func NewPodmanEngine(opts ...CLIEngineOption) *PodmanEngine {
	path, _ := exec.LookPath("podman")
	return &PodmanEngine{
		CLIEngine: NewCLIEngine(string(TypePodman), path, opts...),
	}
}

// Available checks if the podman binary is present and answers a version probe.
func (e *PodmanEngine) Available() bool {
	if e.BinaryPath() == "" {
		return false
	}
	res, err := e.RunCaptured(context.Background(), VersionArgs()...)
	return err == nil && res.OK()
}

// Version returns the podman version line.
func (e *PodmanEngine) Version(ctx context.Context) (string, error) {
	res, err := e.RunCaptured(ctx, VersionArgs()...)
	if err != nil {
		return "", fmt.Errorf("failed to get podman version: %w", err)
	}
	if !res.OK() {
		return "", fmt.Errorf("podman version probe exited with status %d", res.ExitCode)
	}
	return res.Stdout, nil
}
