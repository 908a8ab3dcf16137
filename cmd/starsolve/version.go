// Version command for the starsolve CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/shootingstars/pkg/stars"
)

const modulePath = "github.com/dukaforge/shootingstars"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the starsolve version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "starsolve v%s\nmodule: %s\n", stars.Version, modulePath)
		return nil
	},
}
