// SPDX-License-Identifier: MPL-2.0

package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

// docsCmd renders the embedded usage guide in the terminal.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the usage guide",
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := renderer.Render(usageDoc)
		if err != nil {
			return fmt.Errorf("failed to render usage guide: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
