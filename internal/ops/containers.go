// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"fmt"
	"io"

	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

// ContainerOps groups the container lifecycle operations.
type ContainerOps struct {
	base
	// logTail is the number of lines the logs operation shows.
	logTail int
	// shell is the program launched inside a container by Exec.
	shell string
}

// NewContainerOps creates the container operation set.
func NewContainerOps(eng Engine, prompt tui.Prompter, out io.Writer, logger *log.Logger, logTail int, shell string) *ContainerOps {
	return &ContainerOps{
		base:    base{engine: eng, prompt: prompt, out: out, logger: logger},
		logTail: logTail,
		shell:   shell,
	}
}

// List prints the engine's container table unmodified. With all set, stopped
// containers are included.
func (o *ContainerOps) List(ctx context.Context, all bool) (Outcome, error) {
	if all {
		tui.Headerln(o.out, "All containers")
	} else {
		tui.Headerln(o.out, "Running containers")
	}
	res, outcome, ok := o.captured(ctx, engine.ContainersArgs(all)...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "could not list containers: %s", res.Stderr)
		return EngineFailed(res.Stderr), nil
	}
	fmt.Fprintln(o.out, res.Stdout)
	return Ok(), nil
}

// Run starts a new detached container. Name and port mapping are optional and
// omitted from the command when left empty.
func (o *ContainerOps) Run(ctx context.Context) (Outcome, error) {
	image, outcome, err := o.requireInput("Image to run", "image name")
	if err != nil || image == "" {
		return outcome, err
	}

	name, err := o.prompt.Input("Container name (optional)")
	if err != nil {
		return Outcome{}, err
	}
	port, err := o.prompt.Input("Port mapping (e.g. 8080:80, optional)")
	if err != nil {
		return Outcome{}, err
	}

	res, outcome, ok := o.captured(ctx, engine.RunContainerArgs(image, name, port)...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "failed to start container: %s", res.Stderr)
		return EngineFailed(res.Stderr), nil
	}

	id := res.Stdout
	if len(id) > 12 {
		id = id[:12]
	}
	tui.Successln(o.out, "container started with id %s", id)
	return Ok(), nil
}

// Start starts a stopped container.
func (o *ContainerOps) Start(ctx context.Context) (Outcome, error) {
	return o.lifecycle(ctx, "start", "started", engine.StartArgs)
}

// Stop stops a running container.
func (o *ContainerOps) Stop(ctx context.Context) (Outcome, error) {
	return o.lifecycle(ctx, "stop", "stopped", engine.StopArgs)
}

// Restart restarts a container.
func (o *ContainerOps) Restart(ctx context.Context) (Outcome, error) {
	return o.lifecycle(ctx, "restart", "restarted", engine.RestartArgs)
}

// lifecycle is the shared list-prompt-execute shape of start/stop/restart:
// show a snapshot first so the operator can pick an identifier, then run the
// single-argument engine subcommand against it.
func (o *ContainerOps) lifecycle(ctx context.Context, verb, done string, argsFn func(string) []string) (Outcome, error) {
	if _, err := o.List(ctx, true); err != nil {
		return Outcome{}, err
	}

	id, outcome, err := o.requireInput(fmt.Sprintf("Container id or name to %s", verb), "container id")
	if err != nil || id == "" {
		return outcome, err
	}

	res, outcome, ok := o.captured(ctx, argsFn(id)...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "failed to %s container %s: %s", verb, id, res.Stderr)
		return EngineFailed(res.Stderr), nil
	}
	tui.Successln(o.out, "container %s %s", id, done)
	return Ok(), nil
}

// Remove deletes a container after the confirmation gate. Removal is always
// forced, so a running container goes down with its removal.
func (o *ContainerOps) Remove(ctx context.Context) (Outcome, error) {
	if _, err := o.List(ctx, true); err != nil {
		return Outcome{}, err
	}

	id, outcome, err := o.requireInput("Container id or name to remove", "container id")
	if err != nil || id == "" {
		return outcome, err
	}

	proceed, err := o.confirmGate(fmt.Sprintf("Remove container %s?", id))
	if err != nil {
		return Outcome{}, err
	}
	if !proceed {
		return AbortedByOperator(), nil
	}

	res, outcome, ok := o.captured(ctx, engine.RemoveContainerArgs(id)...)
	if !ok {
		return outcome, nil
	}
	if !res.OK() {
		tui.Failureln(o.out, "failed to remove container %s: %s", id, res.Stderr)
		return EngineFailed(res.Stderr), nil
	}
	tui.Successln(o.out, "container %s removed", id)
	return Ok(), nil
}

// Logs tails a container's logs straight to the terminal.
func (o *ContainerOps) Logs(ctx context.Context) (Outcome, error) {
	if _, err := o.List(ctx, true); err != nil {
		return Outcome{}, err
	}

	id, outcome, err := o.requireInput("Container id or name", "container id")
	if err != nil || id == "" {
		return outcome, err
	}

	tui.Headerln(o.out, fmt.Sprintf("Logs for %s (last %d lines)", id, o.logTail))
	return o.interactive(ctx, engine.LogsArgs(id, o.logTail)...), nil
}

// Exec opens an interactive shell inside a running container. Only running
// containers are listed, since exec cannot target a stopped one.
func (o *ContainerOps) Exec(ctx context.Context) (Outcome, error) {
	if _, err := o.List(ctx, false); err != nil {
		return Outcome{}, err
	}

	id, outcome, err := o.requireInput("Container id or name", "container id")
	if err != nil || id == "" {
		return outcome, err
	}

	fmt.Fprintf(o.out, "Opening %s in %s...\n", o.shell, id)
	return o.interactive(ctx, engine.ExecShellArgs(id, o.shell)...), nil
}
