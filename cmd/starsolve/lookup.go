// Lookup command: read an archived solution.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/shootingstars/pkg/stars"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <grid>",
	Short: "Look up a previously archived solution",
	Long: `Lookup reads the archived solution for a grid without running the
solver. The archive is populated by 'solve' or 'sweep --store'.

Example:
  starsolve lookup 256
  starsolve lookup '***/***/***' --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	grid, err := parseGridArg(args[0])
	if err != nil {
		return err
	}

	archive, err := attachArchive()
	if err != nil {
		return err
	}
	defer archive.Detach()

	solution, err := archive.Get(int(grid))
	if err != nil {
		if errors.Is(err, stars.ErrNotFound) {
			return fmt.Errorf("grid %d is not archived; run 'starsolve solve %d' first", grid, grid)
		}
		return fmt.Errorf("lookup: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		output, err := json.MarshalIndent(solution, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal solution: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "Grid:      %d\n%s\n", solution.Grid, solution.Rendered)
	if !solution.Solvable {
		fmt.Fprintln(out, noSolutionMessage)
		return nil
	}
	fmt.Fprintf(out, "Moves:     %s\n", moveLine(solution.Moves))
	fmt.Fprintf(out, "Length:    %d\n", solution.Length)
	fmt.Fprintf(out, "Archived:  %s\n", solution.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
