// SPDX-License-Identifier: MPL-2.0

// Package cli contains the dockhand command-line surface.
package cli

import (
	"context"
	"fmt"
	"os"

	"dockhand-cli/internal/config"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgDir allows overriding the platform config directory
	cfgDir string
	// engineFlag overrides the configured engine preference
	engineFlag string

	// rootCmd represents the base command when called without any subcommands.
	// Running it bare enters the interactive menu session.
	rootCmd = &cobra.Command{
		Use:   "dockhand",
		Short: "An interactive console for your container engine",
		Long: tui.TitleStyle.Render("dockhand") + tui.SubtitleStyle.Render(" - an interactive console for docker and podman") + `

dockhand drives a Docker-compatible container engine through numbered
menus instead of engine commands typed by hand: image lifecycle,
container lifecycle, and system maintenance, with confirmation gates
in front of everything destructive.

Run it without arguments to enter the menu session.`,
		RunE: runMenu,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "config directory (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVarP(&engineFlag, "engine", "e", "", "container engine to use (auto|docker|podman)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig applies the global flags before any command body runs.
func initRootConfig() {
	if cfgDir != "" {
		config.SetConfigDirOverride(cfgDir)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
