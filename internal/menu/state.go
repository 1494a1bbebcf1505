// SPDX-License-Identifier: MPL-2.0

// Package menu drives the interactive session: a small state machine over
// the menu screens, dispatching selected options to the operation sets.
package menu

import (
	"context"

	"dockhand-cli/internal/ops"
)

// State identifies a menu screen. Exit is terminal.
type State int

const (
	StateMain State = iota
	StateImages
	StateContainers
	StateSystem
	StateExit
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateImages:
		return "images"
	case StateContainers:
		return "containers"
	case StateSystem:
		return "system"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

type (
	// Action is a leaf operation dispatched from a menu. The error channel
	// carries only input interruption; operation results travel as Outcome.
	Action func(ctx context.Context) (ops.Outcome, error)

	// Option maps a selection code to a transition. Navigation options have
	// a nil Action; leaf options run their Action and stay on the same menu.
	Option struct {
		Code   string
		Label  string
		Next   State
		Action Action
	}

	// Menu is one screen: a title and its ordered options.
	Menu struct {
		Title   string
		Options []Option
	}
)

// lookup resolves a selection code against the menu's options.
func (m Menu) lookup(code string) (Option, bool) {
	for _, opt := range m.Options {
		if opt.Code == code {
			return opt, true
		}
	}
	return Option{}, false
}
