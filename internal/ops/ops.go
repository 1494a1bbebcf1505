// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"errors"
	"io"
	"strings"

	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

// Engine is the slice of the executor contract the operations need. The
// production value is a *engine.DockerEngine or *engine.PodmanEngine; tests
// substitute a recorder.
type Engine interface {
	Name() string
	RunCaptured(ctx context.Context, args ...string) (engine.Result, error)
	RunInteractive(ctx context.Context, args ...string) error
}

// spawnFailureReason is the generic message shown when no engine process
// could be started. The session layer never needs executor-level detail.
const spawnFailureReason = "engine command could not be started"

// base carries the dependencies shared by every operation set.
type base struct {
	engine Engine
	prompt tui.Prompter
	out    io.Writer
	logger *log.Logger
}

// captured runs a captured command and renders nothing; callers decide what
// to do with the Result. A spawn fault is already rendered and mapped here.
func (b *base) captured(ctx context.Context, args ...string) (engine.Result, Outcome, bool) {
	b.logger.Debug("running engine command", "engine", b.engine.Name(), "args", args)
	res, err := b.engine.RunCaptured(ctx, args...)
	if err != nil {
		b.logger.Debug("engine spawn fault", "err", err)
		tui.Failureln(b.out, spawnFailureReason)
		return engine.Result{}, EngineFailed(spawnFailureReason), false
	}
	return res, Outcome{}, true
}

// interactive hands the terminal to an engine command and reduces the error
// shapes to an Outcome. Non-zero exits keep their own reason; spawn faults
// get the generic one.
func (b *base) interactive(ctx context.Context, args ...string) Outcome {
	b.logger.Debug("running engine command interactively", "engine", b.engine.Name(), "args", args)
	err := b.engine.RunInteractive(ctx, args...)
	if err == nil {
		return Ok()
	}
	var exitErr *engine.ExitError
	if errors.As(err, &exitErr) {
		return EngineFailed(exitErr.Error())
	}
	b.logger.Debug("engine spawn fault", "err", err)
	tui.Failureln(b.out, spawnFailureReason)
	return EngineFailed(spawnFailureReason)
}

// requireInput prompts for a required field and trims it. The second return
// is false when the field is empty and the operation must stop before any
// engine invocation.
func (b *base) requireInput(label, what string) (string, Outcome, error) {
	value, err := b.prompt.Input(label)
	if err != nil {
		return "", Outcome{}, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		tui.Failureln(b.out, "%s must not be empty", what)
		return "", Invalid(what + " must not be empty"), nil
	}
	return value, Outcome{}, nil
}

// confirmGate evaluates the yes/no gate in front of a destructive action.
// Returns proceed=false for anything but an explicit affirmative answer.
func (b *base) confirmGate(question string) (bool, error) {
	proceed, err := b.prompt.Confirm(question)
	if err != nil {
		return false, err
	}
	if !proceed {
		tui.Warnln(b.out, "aborted, nothing was removed")
	}
	return proceed, nil
}
