// Render command: print the textual form of a grid.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <grid>",
	Short: "Print a grid as three rows of '*' and '.'",
	Long: `Render parses a grid (a decimal value in [0, 511] or the '/'-separated
textual form) and prints it as three rows of stars and dark holes.

Example:
  starsolve render 495
  starsolve render '*../.*./..*'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := parseGridArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), grid)
		return nil
	},
}
