// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dockhand-cli/internal/ops"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

// Session runs the interactive menu loop. It owns no engine state itself;
// every side effect goes through the operation sets it was built with.
type Session struct {
	prompt tui.Prompter
	out    io.Writer
	logger *log.Logger
	menus  map[State]Menu
}

// NewSession wires the menu table over the given operation sets.
func NewSession(images *ops.ImageOps, containers *ops.ContainerOps, system *ops.SystemOps, prompt tui.Prompter, out io.Writer, logger *log.Logger) *Session {
	s := &Session{
		prompt: prompt,
		out:    out,
		logger: logger,
	}

	s.menus = map[State]Menu{
		StateMain: {
			Title: "dockhand - main menu",
			Options: []Option{
				{Code: "1", Label: "Image management", Next: StateImages},
				{Code: "2", Label: "Container management", Next: StateContainers},
				{Code: "3", Label: "System maintenance", Next: StateSystem},
				{Code: "4", Label: "Exit", Next: StateExit},
			},
		},
		StateImages: {
			Title: "Image management",
			Options: []Option{
				{Code: "1", Label: "List images", Next: StateImages, Action: images.List},
				{Code: "2", Label: "Pull image", Next: StateImages, Action: images.Pull},
				{Code: "3", Label: "Build image", Next: StateImages, Action: images.Build},
				{Code: "4", Label: "Remove image", Next: StateImages, Action: images.Remove},
				{Code: "5", Label: "Back to main menu", Next: StateMain},
			},
		},
		StateContainers: {
			Title: "Container management",
			Options: []Option{
				{Code: "1", Label: "List running containers", Next: StateContainers, Action: func(ctx context.Context) (ops.Outcome, error) { return containers.List(ctx, false) }},
				{Code: "2", Label: "List all containers", Next: StateContainers, Action: func(ctx context.Context) (ops.Outcome, error) { return containers.List(ctx, true) }},
				{Code: "3", Label: "Run new container", Next: StateContainers, Action: containers.Run},
				{Code: "4", Label: "Start container", Next: StateContainers, Action: containers.Start},
				{Code: "5", Label: "Stop container", Next: StateContainers, Action: containers.Stop},
				{Code: "6", Label: "Restart container", Next: StateContainers, Action: containers.Restart},
				{Code: "7", Label: "Remove container", Next: StateContainers, Action: containers.Remove},
				{Code: "8", Label: "View container logs", Next: StateContainers, Action: containers.Logs},
				{Code: "9", Label: "Open shell in container", Next: StateContainers, Action: containers.Exec},
				{Code: "10", Label: "Back to main menu", Next: StateMain},
			},
		},
		StateSystem: {
			Title: "System maintenance",
			Options: []Option{
				{Code: "1", Label: "Engine system information", Next: StateSystem, Action: system.Info},
				{Code: "2", Label: "Disk usage", Next: StateSystem, Action: system.DiskUsage},
				{Code: "3", Label: "Clean up unused resources", Next: StateSystem, Action: system.Prune},
				{Code: "4", Label: "Back to main menu", Next: StateMain},
			},
		},
	}

	return s
}

// Run drives the state machine until the operator reaches Exit. It is the
// single fault boundary of the session: an unexpected panic anywhere below
// is caught here once, reported, and turned into a graceful error return.
// An interrupt during any input wait ends the session cleanly.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("unexpected session fault", "fault", r)
			err = fmt.Errorf("unexpected session fault: %v", r)
		}
	}()

	state := StateMain
	for state != StateExit {
		m := s.menus[state]
		s.render(m)

		choice, inputErr := s.prompt.Input("Select an option")
		if errors.Is(inputErr, tui.ErrInterrupted) {
			s.logger.Debug("interrupt received, ending session")
			fmt.Fprintln(s.out)
			return nil
		}
		if inputErr != nil {
			return inputErr
		}

		opt, ok := m.lookup(choice)
		if !ok {
			tui.Failureln(s.out, "invalid option %q", choice)
			if done := s.pause(); done {
				return nil
			}
			continue
		}

		if opt.Action != nil {
			outcome, actErr := opt.Action(ctx)
			if errors.Is(actErr, tui.ErrInterrupted) {
				s.logger.Debug("interrupt received, ending session")
				fmt.Fprintln(s.out)
				return nil
			}
			if actErr != nil {
				return actErr
			}
			s.logger.Debug("operation finished", "menu", state.String(), "option", opt.Code, "status", outcome.Status)
			if done := s.pause(); done {
				return nil
			}
		}

		state = opt.Next
	}

	fmt.Fprintln(s.out, tui.SubtitleStyle.Render("Thanks for using dockhand"))
	return nil
}

// pause waits for enter before re-rendering a menu. It reports true when the
// operator interrupted instead, which ends the session.
func (s *Session) pause() bool {
	if err := s.prompt.Pause(); err != nil {
		return true
	}
	return false
}

func (s *Session) render(m Menu) {
	tui.Headerln(s.out, m.Title)
	for _, opt := range m.Options {
		fmt.Fprintf(s.out, "  %s %s\n", tui.OptionStyle.Render(opt.Code+"."), opt.Label)
	}
}
