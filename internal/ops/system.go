// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"io"

	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
)

// SystemOps groups the engine-wide maintenance operations.
type SystemOps struct {
	base
}

// NewSystemOps creates the system operation set.
func NewSystemOps(eng Engine, prompt tui.Prompter, out io.Writer, logger *log.Logger) *SystemOps {
	return &SystemOps{base{engine: eng, prompt: prompt, out: out, logger: logger}}
}

// Info streams the engine's system information to the terminal.
func (o *SystemOps) Info(ctx context.Context) (Outcome, error) {
	tui.Headerln(o.out, "Engine system information")
	return o.interactive(ctx, engine.SystemInfoArgs()...), nil
}

// DiskUsage streams the engine's disk usage summary to the terminal.
func (o *SystemOps) DiskUsage(ctx context.Context) (Outcome, error) {
	tui.Headerln(o.out, "Engine disk usage")
	return o.interactive(ctx, engine.DiskUsageArgs()...), nil
}

// Prune removes unused engine resources after the confirmation gate. It is
// the widest destructive operation in the tool, so the warning spells out
// exactly what goes away.
func (o *SystemOps) Prune(ctx context.Context) (Outcome, error) {
	tui.Headerln(o.out, "System prune")
	tui.Warnln(o.out, "This will remove:")
	tui.Warnln(o.out, "  - stopped containers")
	tui.Warnln(o.out, "  - unused networks")
	tui.Warnln(o.out, "  - unreferenced and dangling images")
	tui.Warnln(o.out, "  - build cache")

	proceed, err := o.confirmGate("Continue with the cleanup?")
	if err != nil {
		return Outcome{}, err
	}
	if !proceed {
		return AbortedByOperator(), nil
	}

	result := o.interactive(ctx, engine.PruneArgs()...)
	if result.OK() {
		tui.Successln(o.out, "cleanup complete")
	}
	return result, nil
}
