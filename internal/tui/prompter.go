// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the operator interrupts an input wait
// (ctrl-c). Callers treat it as a clean request to end the session, not as
// a failure.
var ErrInterrupted = errors.New("input interrupted")

type (
	// Prompter is the line-oriented input contract consumed by the menu and
	// operation layers. The production implementation is survey-backed;
	// tests substitute a scripted fake.
	Prompter interface {
		// Input asks for a single line and returns it with surrounding
		// whitespace trimmed. An empty answer is a valid return value.
		Input(message string) (string, error)
		// Confirm asks a yes/no question gating a destructive action.
		// Ambiguous or empty answers mean no.
		Confirm(message string) (bool, error)
		// Pause blocks until the operator presses enter.
		Pause() error
	}

	// SurveyPrompter implements Prompter on the real terminal.
	SurveyPrompter struct{}
)

// NewSurveyPrompter creates a terminal-backed prompter.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Input implements Prompter.
func (p *SurveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer); err != nil {
		return "", mapInterrupt(err)
	}
	return strings.TrimSpace(answer), nil
}

// Confirm implements Prompter. The gate reads a plain line rather than using
// survey.Confirm so that the historical affirmative spellings (y, yes, s, si)
// all proceed; anything else, including an empty answer, aborts.
func (p *SurveyPrompter) Confirm(message string) (bool, error) {
	answer, err := p.Input(message + " (y/N)")
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer), nil
}

// Pause implements Prompter.
func (p *SurveyPrompter) Pause() error {
	var discard string
	if err := survey.AskOne(&survey.Input{Message: "Press enter to continue"}, &discard); err != nil {
		return mapInterrupt(err)
	}
	return nil
}

// IsAffirmative reports whether a confirmation answer means "proceed".
// Accepted spellings are y, yes, s and si, case-insensitively.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si":
		return true
	default:
		return false
	}
}

func mapInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
