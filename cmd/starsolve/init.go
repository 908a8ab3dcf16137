// Init command for the starsolve CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize starsolve configuration and the solution archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		// Attach once so the archive database and schema exist.
		archive, err := attachArchive()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := archive.Detach(); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\narchive: %s\n", configDir, dataDir)
		return nil
	},
}
