// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"dockhand-cli/internal/config"
	"dockhand-cli/internal/engine"
	"dockhand-cli/internal/menu"
	"dockhand-cli/internal/ops"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// menuCmd is the explicit spelling of the default behavior.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Enter the interactive menu session",
	RunE:  runMenu,
}

// runMenu establishes the engine-availability fact once, then hands control
// to the session. A missing engine is a fatal startup precondition: the
// command errors out and the process exits non-zero.
func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("falling back to default configuration", "err", err)
		cfg = config.Default()
	}
	if engineFlag != "" {
		cfg.Engine = engineFlag
	}
	if cfg.NoColor {
		// lipgloss honors NO_COLOR through termenv.
		os.Setenv("NO_COLOR", "1")
	}

	eng, err := engine.Detect(engine.Type(cfg.Engine))
	if err != nil {
		return fmt.Errorf("startup precondition failed: %w", err)
	}

	version, err := eng.Version(cmd.Context())
	if err != nil {
		version = "unknown"
	}
	log.Info("engine detected", "engine", eng.Name(), "version", version)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.TitleStyle.Render("dockhand"))
	fmt.Fprintln(out, tui.HintStyle.Render("engine: "+version))

	logger := log.Default()
	prompt := tui.NewSurveyPrompter()

	images := ops.NewImageOps(eng, prompt, out, logger)
	containers := ops.NewContainerOps(eng, prompt, out, logger, cfg.LogTail, cfg.Shell)
	system := ops.NewSystemOps(eng, prompt, out, logger)

	session := menu.NewSession(images, containers, system, prompt, out, logger)
	return session.Run(cmd.Context())
}
