// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"io"

	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

type (
	// fakeEngine records every argument vector it receives and plays back a
	// configured result, so operations can be tested without a real engine
	// binary.
	fakeEngine struct {
		captured       [][]string
		interactive    [][]string
		result         engine.Result
		capturedErr    error
		interactiveErr error
	}

	// scriptedPrompter feeds canned operator answers. Confirmation answers
	// are raw strings run through tui.IsAffirmative, so gate tests exercise
	// the same affirmative matching as the terminal prompter.
	scriptedPrompter struct {
		inputs   []string
		confirms []string
		err      error
	}
)

func (f *fakeEngine) Name() string { return "docker" }

func (f *fakeEngine) RunCaptured(_ context.Context, args ...string) (engine.Result, error) {
	f.captured = append(f.captured, args)
	return f.result, f.capturedErr
}

func (f *fakeEngine) RunInteractive(_ context.Context, args ...string) error {
	f.interactive = append(f.interactive, args)
	return f.interactiveErr
}

func (f *fakeEngine) invocations() int {
	return len(f.captured) + len(f.interactive)
}

func (p *scriptedPrompter) Input(string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if len(p.inputs) == 0 {
		return "", nil
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if len(p.confirms) == 0 {
		return false, nil
	}
	next := p.confirms[0]
	p.confirms = p.confirms[1:]
	return tui.IsAffirmative(next), nil
}

func (p *scriptedPrompter) Pause() error { return p.err }

func testLogger() *log.Logger {
	return log.New(io.Discard)
}
