// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"os/exec"
)

// DockerEngine drives the Docker CLI. It embeds CLIEngine for execution.
type DockerEngine struct {
	*CLIEngine
}

// NewDockerEngine creates a new Docker engine.
func NewDockerEngine(opts ...CLIEngineOption) *DockerEngine {
	path, _ := exec.LookPath("docker")
	return &DockerEngine{
		CLIEngine: NewCLIEngine(string(TypeDocker), path, opts...),
	}
}

// Available checks if the docker binary is present and answers a version probe.
func (e *DockerEngine) Available() bool {
	if e.BinaryPath() == "" {
		return false
	}
	res, err := e.RunCaptured(context.Background(), VersionArgs()...)
	return err == nil && res.OK()
}

// Version returns the docker version line.
func (e *DockerEngine) Version(ctx context.Context) (string, error) {
	res, err := e.RunCaptured(ctx, VersionArgs()...)
	if err != nil {
		return "", fmt.Errorf("failed to get docker version: %w", err)
	}
	if !res.OK() {
		return "", fmt.Errorf("docker version probe exited with status %d", res.ExitCode)
	}
	return res.Stdout, nil
}
