// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"dockhand-cli/internal/config"
	"dockhand-cli/internal/tui"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage dockhand configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))

			if path, pathErr := config.FilePath(); pathErr == nil {
				fmt.Fprintln(cmd.OutOrStdout(), tui.HintStyle.Render("config file: "+path))
			}
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.Save(config.Default())
			if err != nil {
				return err
			}
			log.Info("default config written", "path", path)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
